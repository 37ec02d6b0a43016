package ports

import (
	"context"
	"waste-route-service/internal/domain"
)

// Port: a boundary for loading and saving application state.
type WasteRepository interface {
	// Load the current state. A store with nothing saved yields the zero state.
	LoadState(ctx context.Context) (domain.WasteState, error)
	// Replace the stored state.
	SaveState(ctx context.Context, state domain.WasteState) error
	// Retrieve all registered households.
	ListHouseholds(ctx context.Context) ([]domain.Household, error)
	SaveHouseholds(ctx context.Context, households []domain.Household) error
}
