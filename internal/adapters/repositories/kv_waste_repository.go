package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
)

// Keys of the stored JSON documents. The whole waste state lives in one
// document so every save is a single Set.
const (
	KeyState      = "state"
	KeyHouseholds = "households"
)

// KVWasteRepository implements the WasteRepository port over any KeyValueStore.
type KVWasteRepository struct {
	Store ports.KeyValueStore
}

func NewKVWasteRepository(store ports.KeyValueStore) *KVWasteRepository {
	return &KVWasteRepository{Store: store}
}

// getJSON decodes the document under key into v. Missing keys leave v untouched.
func (r *KVWasteRepository) getJSON(ctx context.Context, key string, v any) error {
	raw, ok, err := r.Store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %q: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func (r *KVWasteRepository) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := r.Store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *KVWasteRepository) LoadState(ctx context.Context) (domain.WasteState, error) {
	if r.Store == nil {
		return domain.WasteState{}, errors.New("kv waste repository: store is nil")
	}

	var state domain.WasteState
	if err := r.getJSON(ctx, KeyState, &state); err != nil {
		return domain.WasteState{}, fmt.Errorf("load state: %w", err)
	}

	return state, nil
}

func (r *KVWasteRepository) SaveState(ctx context.Context, state domain.WasteState) error {
	if r.Store == nil {
		return errors.New("kv waste repository: store is nil")
	}

	if state.Pickups == nil {
		state.Pickups = []domain.Pickup{}
	}
	if state.Overflows == nil {
		state.Overflows = []domain.BinOverflow{}
	}

	if err := r.setJSON(ctx, KeyState, state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}

func (r *KVWasteRepository) ListHouseholds(ctx context.Context) ([]domain.Household, error) {
	if r.Store == nil {
		return nil, errors.New("kv waste repository: store is nil")
	}

	households := []domain.Household{}
	if err := r.getJSON(ctx, KeyHouseholds, &households); err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	return households, nil
}

func (r *KVWasteRepository) SaveHouseholds(ctx context.Context, households []domain.Household) error {
	if r.Store == nil {
		return errors.New("kv waste repository: store is nil")
	}

	if err := r.setJSON(ctx, KeyHouseholds, households); err != nil {
		return fmt.Errorf("save households: %w", err)
	}
	return nil
}
