package classifier

import (
	"context"
	"testing"
	"waste-route-service/internal/domain"
)

func TestMockClassifierUsesPicker(t *testing.T) {
	c := NewMockClassifierWithPicker(nil, func(n int) int { return n - 1 })

	m, err := c.Classify(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.KnownMaterials[len(domain.KnownMaterials)-1]
	if m != want {
		t.Fatalf("material = %+v, want %+v", m, want)
	}
}

func TestMockClassifierAlwaysReturnsKnownMaterial(t *testing.T) {
	c := NewMockClassifier(nil)

	for i := 0; i < 100; i++ {
		m, err := c.Classify(context.Background(), []byte("img"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found := false
		for _, k := range domain.KnownMaterials {
			if k == m {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unknown material %+v", m)
		}
	}
}

func TestMockClassifierErrors(t *testing.T) {
	bad := NewMockClassifierWithPicker(nil, func(n int) int { return n })
	if _, err := bad.Classify(context.Background(), []byte("img")); err == nil {
		t.Error("expected error for out of range picker")
	}

	empty := NewMockClassifierWithPicker([]domain.Material{}, func(int) int { return 0 })
	if _, err := empty.Classify(context.Background(), []byte("img")); err == nil {
		t.Error("expected error with no materials")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockClassifier(nil).Classify(ctx, []byte("img")); err == nil {
		t.Error("expected error for cancelled context")
	}
}
