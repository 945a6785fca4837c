package models

import (
	"context"
)

// EntityRecognizer wraps a pretrained named-entity recognition model.
// Implementations are shared read-only across requests and must be safe for
// concurrent use.
type EntityRecognizer interface {
	// Recognize returns the entities found in text, in the order the model emits them.
	Recognize(ctx context.Context, text string) ([]SingleEntity, error)
	// Name identifies the loaded model.
	Name() string
}
