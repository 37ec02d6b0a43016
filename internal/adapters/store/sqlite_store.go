package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"waste-route-service/internal/platform/obs"
)

// SQLite backed KeyValueStore over the kv_store table.
type SqliteStore struct {
	DB *sql.DB
}

func NewSqliteStore(db *sql.DB) *SqliteStore {
	return &SqliteStore{DB: db}
}

func (s *SqliteStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "store.sqlite.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("sqlite store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get sqlite store: key must not be empty")
	}

	q := `
	SELECT value
    FROM kv_store
    WHERE key = ?;
	`

	var value []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get sqlite store key=%q: %w", key, err)
	}

	return value, true, nil
}

func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "store.sqlite.Set")(&err)

	if s.DB == nil {
		return errors.New("sqlite store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert sqlite store: key must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO kv_store (
        key,
        value
    )
    VALUES (?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("insert sqlite store key=%q: %w", key, err)
	}

	return nil
}
