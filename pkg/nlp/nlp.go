package nlp

import (
	"context"
	"fmt"

	"github.com/getzep/zep-ner/config"
	"github.com/getzep/zep-ner/internal"
	"github.com/getzep/zep-ner/pkg/models"
)

var log = internal.GetLogger()

// NewRecognizer loads the model selected by cfg.NLP.Backend. It is called once at
// startup; any error means the service cannot serve requests.
func NewRecognizer(ctx context.Context, cfg *config.Config) (models.EntityRecognizer, error) {
	switch cfg.NLP.Backend {
	case config.BackendProse, "":
		return NewProseRecognizer()
	case config.BackendServer:
		return NewServerRecognizer(ctx, cfg.NLP)
	default:
		return nil, fmt.Errorf("nlp.backend (%s) is not supported", cfg.NLP.Backend)
	}
}
