package ports

import (
	"context"
	"waste-route-service/internal/domain"
)

// Contract for identifying the material shown in an uploaded image.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (domain.Material, error)
}
