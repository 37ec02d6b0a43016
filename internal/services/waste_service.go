package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"
	"waste-route-service/internal/ports"

	"github.com/google/uuid"
)

// Default minutes of travel assumed per kilometre when estimating route time.
const DefaultMinutesPerKm = 5.0

// WasteService applies state transitions against a repository.
//
// Each operation loads the state, applies a pure domain transition and saves
// the result. Operations are serialized so concurrent requests never lose
// each other's writes.
type WasteService struct {
	Repo         ports.WasteRepository
	Depot        domain.Point
	MinutesPerKm float64
	// Reward catalogue for Wallet; nil means domain.DefaultRewards.
	Rewards []domain.Reward

	// Now and NewID are replaceable for deterministic tests.
	Now   func() time.Time
	NewID func(prefix string) string

	mu sync.Mutex
}

func NewWasteService(repo ports.WasteRepository, depot domain.Point, minutesPerKm float64) *WasteService {
	if minutesPerKm <= 0 {
		minutesPerKm = DefaultMinutesPerKm
	}
	if depot.ID == "" {
		depot.ID = "START"
	}

	return &WasteService{
		Repo:         repo,
		Depot:        depot,
		MinutesPerKm: minutesPerKm,
		Now:          time.Now,
		NewID:        newID,
	}
}

func newID(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// update runs fn over the stored state and saves what it returns.
func (s *WasteService) update(ctx context.Context, fn func(domain.WasteState) (domain.WasteState, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.Repo.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	next, err := fn(state)
	if err != nil {
		return err
	}

	if err := s.Repo.SaveState(ctx, next); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}

func (s *WasteService) read(ctx context.Context) (domain.WasteState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.Repo.LoadState(ctx)
	if err != nil {
		return domain.WasteState{}, fmt.Errorf("load state: %w", err)
	}
	return state, nil
}

func (s *WasteService) ListHouseholds(ctx context.Context) ([]domain.Household, error) {
	households, err := s.Repo.ListHouseholds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	return households, nil
}

func (s *WasteService) ListPickups(ctx context.Context) ([]domain.Pickup, error) {
	state, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pickups: %w", err)
	}
	return state.Pickups, nil
}

func (s *WasteService) AddPickup(ctx context.Context, req domain.PickupRequest) (_ domain.Pickup, err error) {
	defer obs.Time(ctx, "pickups.Add")(&err)

	households, err := s.Repo.ListHouseholds(ctx)
	if err != nil {
		return domain.Pickup{}, fmt.Errorf("add pickup: list households: %w", err)
	}

	var created domain.Pickup
	err = s.update(ctx, func(state domain.WasteState) (domain.WasteState, error) {
		next, p, err := domain.AddPickup(state, households, req, s.NewID("P"), s.Now())
		created = p
		return next, err
	})
	if err != nil {
		return domain.Pickup{}, err
	}

	return created, nil
}

func (s *WasteService) CancelPickup(ctx context.Context, id string) (err error) {
	defer obs.Time(ctx, "pickups.Cancel")(&err)

	return s.update(ctx, func(state domain.WasteState) (domain.WasteState, error) {
		return domain.CancelPickup(state, id)
	})
}

// MarkPicked completes a pickup and returns the citizen's points as saved
// by that same update.
func (s *WasteService) MarkPicked(ctx context.Context, id string) (_ int, err error) {
	defer obs.Time(ctx, "pickups.MarkPicked")(&err)

	var points int
	err = s.update(ctx, func(state domain.WasteState) (domain.WasteState, error) {
		next, err := domain.MarkPicked(state, id)
		points = next.CitizenPoints
		return next, err
	})
	if err != nil {
		return 0, err
	}

	return points, nil
}

func (s *WasteService) ListOverflows(ctx context.Context) ([]domain.BinOverflow, error) {
	state, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overflows: %w", err)
	}
	return state.Overflows, nil
}

func (s *WasteService) ReportBinOverflow(ctx context.Context, location, description string) (_ domain.BinOverflow, err error) {
	defer obs.Time(ctx, "overflows.Report")(&err)

	var created domain.BinOverflow
	err = s.update(ctx, func(state domain.WasteState) (domain.WasteState, error) {
		next, o, err := domain.ReportBinOverflow(state, location, description, s.NewID("O"), s.Now())
		created = o
		return next, err
	})
	if err != nil {
		return domain.BinOverflow{}, err
	}

	return created, nil
}

// ResolveOverflow marks a reported bin as emptied.
func (s *WasteService) ResolveOverflow(ctx context.Context, id string) (_ domain.BinOverflow, err error) {
	defer obs.Time(ctx, "overflows.Resolve")(&err)

	var resolved domain.BinOverflow
	err = s.update(ctx, func(state domain.WasteState) (domain.WasteState, error) {
		next, o, err := domain.ResolveOverflow(state, id)
		resolved = o
		return next, err
	})
	if err != nil {
		return domain.BinOverflow{}, err
	}

	return resolved, nil
}

func (s *WasteService) CitizenPoints(ctx context.Context) (int, error) {
	state, err := s.read(ctx)
	if err != nil {
		return 0, fmt.Errorf("citizen points: %w", err)
	}
	return state.CitizenPoints, nil
}
