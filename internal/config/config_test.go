package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "DEPOT_LAT", "DEPOT_LNG", "MINUTES_PER_KM", "WRITE_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.StoreDriver != StoreSqlite {
		t.Errorf("store driver = %q, want %q", cfg.StoreDriver, StoreSqlite)
	}
	if cfg.DepotLat != 26.1445 || cfg.DepotLng != 91.7362 {
		t.Errorf("depot = %v,%v", cfg.DepotLat, cfg.DepotLng)
	}
	if cfg.MinutesPerKm != 5 {
		t.Errorf("minutes per km = %v, want 5", cfg.MinutesPerKm)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Errorf("write timeout = %v, want 30s", cfg.WriteTimeout)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("MINUTES_PER_KM", "fast")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric MINUTES_PER_KM")
	}

	t.Setenv("MINUTES_PER_KM", "")
	t.Setenv("STORE_DRIVER", "cassandra")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown STORE_DRIVER")
	}

	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for postgres without DATABASE_URL")
	}
}
