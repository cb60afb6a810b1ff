// Package classifier labels transaction descriptions with a spending category.
package classifier

import (
	"context"
	"errors"
)

const Uncategorized = "Uncategorized"

var (
	ErrModelNotTrained   = errors.New("classifier model not trained")
	ErrEmptyDescription  = errors.New("description has no classifiable terms")
	ErrUnknownVocabulary = errors.New("description shares no terms with the model")
	ErrAmbiguous         = errors.New("description matches several categories equally")
)

// Classifier maps a description to a category label. It may fail or be slow.
//
//go:generate mockery --name Classifier --output mock_Classifier.go
type Classifier interface {
	Classify(ctx context.Context, description string) (string, error)
}

type ClassifierFunc func(ctx context.Context, description string) (string, error)

func (f ClassifierFunc) Classify(ctx context.Context, description string) (string, error) {
	return f(ctx, description)
}
