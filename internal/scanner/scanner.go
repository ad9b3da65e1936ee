// Package scanner holds the pluggable waste classifier. The only shipped
// implementation is a stub: it picks a random category and a confidence in
// the 70–100% band. It stands in for a real recognition backend.
package scanner

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/model"
)

type Classifier interface {
	Classify(ctx context.Context, imageData string) (model.ScanResult, error)
}

type CategoryStore interface {
	ListWasteCategories(ctx context.Context) ([]model.WasteCategory, error)
}

var suggestions = []string{
	"Make sure the item is clean",
	"Remove any labels if possible",
	"Separate different materials",
}

type RandomClassifier struct {
	store CategoryStore
}

func NewRandomClassifier(store CategoryStore) *RandomClassifier {
	return &RandomClassifier{store: store}
}

func (c *RandomClassifier) Classify(ctx context.Context, imageData string) (model.ScanResult, error) {
	categories, err := c.store.ListWasteCategories(ctx)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return model.ScanResult{}, fmt.Errorf("no waste categories: %w", errs.ErrNotFound)
	}

	return model.ScanResult{
		Category:    categories[rand.Intn(len(categories))],
		Confidence:  0.7 + rand.Float64()*0.3,
		Suggestions: suggestions,
	}, nil
}
