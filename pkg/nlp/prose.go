package nlp

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"

	"github.com/getzep/zep-ner/pkg/models"
)

const (
	proseModelName = "prose/en-v2.0.0"
	// prose builds its model lazily from a document, so loading runs one short
	// sentence through the full pipeline.
	proseWarmUpText = "The model is ready."
)

var _ models.EntityRecognizer = &ProseRecognizer{}

// ProseRecognizer runs prose's pretrained English NER model in-process.
// Labels are PERSON and GPE.
type ProseRecognizer struct {
	model *prose.Model
}

// NewProseRecognizer loads the embedded model once. Every later call to Recognize
// reuses it.
func NewProseRecognizer() (r *ProseRecognizer, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("failed to load prose model: %v", p)
		}
	}()

	doc, err := prose.NewDocument(proseWarmUpText, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to load prose model: %w", err)
	}
	if doc.Model == nil {
		return nil, fmt.Errorf("failed to load prose model: no model returned")
	}

	log.Infof("Loaded NER model %s", proseModelName)

	return &ProseRecognizer{model: doc.Model}, nil
}

func (p *ProseRecognizer) Name() string {
	return proseModelName
}

// Recognize tags text with the shared model. A panic in the model runtime is
// returned as an error wrapping models.ErrInference.
func (p *ProseRecognizer) Recognize(
	_ context.Context,
	text string,
) (entities []models.SingleEntity, err error) {
	defer func() {
		if r := recover(); r != nil {
			entities = nil
			err = fmt.Errorf("%w: prose: %v", models.ErrInference, r)
		}
	}()

	doc, err := prose.NewDocument(
		text,
		prose.UsingModel(p.model),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: prose: %w", models.ErrInference, err)
	}

	found := doc.Entities()
	entities = make([]models.SingleEntity, len(found))
	for i, e := range found {
		entities[i] = models.SingleEntity{Text: e.Text, EntityType: e.Label}
	}

	return entities, nil
}
