package store

import (
	"context"
	"database/sql"
	"fmt"
	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/config"
	"waste-route-service/internal/platform/db"
	"waste-route-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// Open builds the KeyValueStore selected by cfg.StoreDriver, preparing its
// schema where one is needed. The returned func releases the connection.
func Open(ctx context.Context, cfg config.Config) (ports.KeyValueStore, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return NewMemoryStore(), func() error { return nil }, nil

	case config.StoreSqlite:
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(conn, repositories.DialectSqlite); err != nil {
			return nil, nil, err
		}
		return NewSqliteStore(conn), conn.Close, nil

	case config.StorePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := initSchema(conn, repositories.DialectPostgres); err != nil {
			return nil, nil, err
		}
		return NewSQLStore(conn), conn.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("open store: ping redis %q: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client, cfg.RedisPrefix), client.Close, nil
	}

	return nil, nil, fmt.Errorf("open store: unknown driver %q", cfg.StoreDriver)
}

func initSchema(conn *sql.DB, dialect repositories.Dialect) error {
	if err := repositories.InitSchema(conn, dialect); err != nil {
		conn.Close()
		return fmt.Errorf("open store: %w", err)
	}
	return nil
}
