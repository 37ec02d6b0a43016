package classifier

import (
	"context"
	"errors"
	"math/rand/v2"
	"waste-route-service/internal/domain"
)

// MockClassifier stands in for a real vision model.
// It ignores the image content and draws one of the known materials.
type MockClassifier struct {
	materials []domain.Material
	pick      func(n int) int
}

// NewMockClassifier draws uniformly at random from materials
// (domain.KnownMaterials when nil).
func NewMockClassifier(materials []domain.Material) *MockClassifier {
	return NewMockClassifierWithPicker(materials, rand.IntN)
}

// NewMockClassifierWithPicker uses pick(n) to choose an index in [0, n).
func NewMockClassifierWithPicker(materials []domain.Material, pick func(n int) int) *MockClassifier {
	if materials == nil {
		materials = domain.KnownMaterials
	}
	return &MockClassifier{materials: materials, pick: pick}
}

func (c *MockClassifier) Classify(ctx context.Context, image []byte) (domain.Material, error) {
	if err := ctx.Err(); err != nil {
		return domain.Material{}, err
	}
	if len(c.materials) == 0 {
		return domain.Material{}, errors.New("mock classifier: no materials configured")
	}

	i := c.pick(len(c.materials))
	if i < 0 || i >= len(c.materials) {
		return domain.Material{}, errors.New("mock classifier: picker returned out of range index")
	}

	return c.materials[i], nil
}
