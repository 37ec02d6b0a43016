package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable with STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreSqlite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Port         string
	StoreDriver  string
	DBPath       string
	DatabaseURL  string
	RedisAddr    string
	RedisPrefix  string
	SeedPath     string
	DepotLat     float64
	DepotLng     float64
	MinutesPerKm float64
	WriteTimeout time.Duration
}

// Load reads the service configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	var err error

	cfg.Port = Get("PORT", "8080")
	cfg.StoreDriver = strings.ToLower(Get("STORE_DRIVER", StoreSqlite))
	cfg.DBPath = Get("DB_PATH", "data/app.db")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisAddr = Get("REDIS_ADDR", "localhost:6379")
	cfg.RedisPrefix = Get("REDIS_PREFIX", "waste:")
	cfg.SeedPath = Get("SEED_PATH", "data/seeds/households.json")

	if cfg.DepotLat, err = GetFloat("DEPOT_LAT", 26.1445); err != nil {
		return Config{}, err
	}
	if cfg.DepotLng, err = GetFloat("DEPOT_LNG", 91.7362); err != nil {
		return Config{}, err
	}
	if cfg.MinutesPerKm, err = GetFloat("MINUTES_PER_KM", 5); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = GetDuration("WRITE_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreSqlite, StoreRedis:
	case StorePostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return Config{}, fmt.Errorf("config: DATABASE_URL is required for STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return Config{}, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.MinutesPerKm <= 0 {
		return Config{}, fmt.Errorf("config: MINUTES_PER_KM must be positive, got %v", cfg.MinutesPerKm)
	}

	return cfg, nil
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
