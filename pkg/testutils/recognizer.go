package testutils

import (
	"context"
	"errors"
	"sync"

	"github.com/getzep/zep-ner/pkg/models"
)

var _ models.EntityRecognizer = &StubRecognizer{}

var ErrStubInference = errors.New("stub inference failure")

// StubRecognizer returns canned entities and records every text it is called with.
// Texts listed in Fail produce ErrStubInference.
type StubRecognizer struct {
	Entities map[string][]models.SingleEntity
	Fail     map[string]bool

	mu    sync.Mutex
	calls []string
}

func NewStubRecognizer() *StubRecognizer {
	return &StubRecognizer{
		Entities: TestEntities,
		Fail:     map[string]bool{},
	}
}

func (s *StubRecognizer) Name() string {
	return "stub"
}

func (s *StubRecognizer) Recognize(_ context.Context, text string) ([]models.SingleEntity, error) {
	s.mu.Lock()
	s.calls = append(s.calls, text)
	s.mu.Unlock()

	if s.Fail[text] {
		return nil, ErrStubInference
	}

	return s.Entities[text], nil
}

// Calls returns the texts passed to Recognize, in call order.
func (s *StubRecognizer) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]string, len(s.calls))
	copy(calls, s.calls)
	return calls
}
