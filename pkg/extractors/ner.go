package extractors

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/getzep/zep-ner/pkg/models"
)

// EntityExtractor runs a batch of documents through the shared recognizer.
type EntityExtractor struct {
	recognizer models.EntityRecognizer
}

func NewEntityExtractor(recognizer models.EntityRecognizer) *EntityExtractor {
	return &EntityExtractor{recognizer: recognizer}
}

// ExtractEntities recognizes entities in each document, one after another, and returns
// one Entities record per document at the same position as its input. The model's
// output is passed through untouched. If any document fails, no results are returned.
func (ee *EntityExtractor) ExtractEntities(
	ctx context.Context,
	batch []models.Content,
) ([]models.Entities, error) {
	if log.IsLevelEnabled(logrus.DebugLevel) {
		var size uint64
		for _, c := range batch {
			size += uint64(len(c.Content))
		}
		log.Debugf(
			"EntityExtractor called for %d documents (%s) using %s",
			len(batch),
			humanize.Bytes(size),
			ee.recognizer.Name(),
		)
	}

	results := make([]models.Entities, len(batch))
	for i, c := range batch {
		entities, err := ee.recognizer.Recognize(ctx, c.Content)
		if err != nil {
			return nil, NewExtractorError(
				"EntityExtractor extract entities call failed",
				models.NewInferenceError(i, err),
			)
		}
		if entities == nil {
			entities = []models.SingleEntity{}
		}

		results[i] = models.Entities{
			PostURL:  c.PostURL,
			Entities: entities,
		}
	}

	return results, nil
}
