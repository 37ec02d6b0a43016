package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
)

type Dialect string

const (
	DialectSqlite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Initialize the kv_store schema for the given SQL dialect.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case DialectSqlite:
		statements = []string{`
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
		`}
	case DialectPostgres:
		statements = []string{`
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		`}
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the household catalogue from a JSON file.
// The whole catalogue is replaced; records are validated before anything is written.
func SeedHouseholdsFromJSON(ctx context.Context, repo ports.WasteRepository, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed households: read %q: %w", jsonPath, err)
	}

	var data []domain.Household
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed households: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(data))
	rows := make([]domain.Household, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("seed households: item at index %d: id cannot be empty", i+1)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("seed households: item at index %d: duplicate id %q", i+1, id)
		}
		seen[id] = struct{}{}

		if item.Lat < -90 || item.Lat > 90 || item.Lng < -180 || item.Lng > 180 {
			return fmt.Errorf("seed households: item %q: coordinates out of range", id)
		}

		if item.DefaultWasteType != "" && !item.DefaultWasteType.Valid() {
			return fmt.Errorf("seed households: item %q: %w", id, domain.ErrInvalidWasteType)
		}

		item.ID = id
		item.Address = strings.TrimSpace(item.Address)
		rows = append(rows, item)
	}

	if err := repo.SaveHouseholds(ctx, rows); err != nil {
		return fmt.Errorf("seed households: %w", err)
	}

	return nil
}
