package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"waste-route-service/internal/platform/obs"
)

// SQLStore is a PostgreSQL backed KeyValueStore over the kv_store table.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "store.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("sql store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get sql store: key must not be empty")
	}

	q := `
	SELECT value
    FROM kv_store
    WHERE key = $1;
	`

	var value []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get sql store key=%q: %w", key, err)
	}

	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "store.sql.Set")(&err)

	if s.DB == nil {
		return errors.New("sql store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert sql store: key must not be empty")
	}

	q := `
	INSERT INTO kv_store (key, value)
    VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value,
		updated_at = now();
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("insert sql store key=%q: %w", key, err)
	}

	return nil
}
