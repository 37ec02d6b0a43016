package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/platform/db"
	"waste-route-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// exerciseStore checks the KeyValueStore contract shared by every backend.
func exerciseStore(t *testing.T, s ports.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "pickups"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	if err := s.Set(ctx, "pickups", []byte(`[{"id":"P1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(ctx, "pickups")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, []byte(`[{"id":"P1"}]`)) {
		t.Fatalf("Get = %q", got)
	}

	if err := s.Set(ctx, "pickups", []byte(`[]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _, err = s.Get(ctx, "pickups")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("Get after overwrite = %q, want []", got)
	}

	// keys are independent
	if _, ok, err := s.Get(ctx, "points"); err != nil || ok {
		t.Fatalf("Get(other key) = ok=%v err=%v", ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v := []byte("abc")
	if err := s.Set(ctx, "k", v); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v[0] = 'x'

	got, _, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	exerciseStore(t, NewRedisStore(client, "waste:"))

	if !mr.Exists("waste:pickups") {
		t.Fatalf("expected prefixed key in redis, have %v", mr.Keys())
	}
}

func TestSqliteStore(t *testing.T) {
	conn, err := db.OpenSqlite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn, repositories.DialectSqlite); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	// schema creation is idempotent
	if err := repositories.InitSchema(conn, repositories.DialectSqlite); err != nil {
		t.Fatalf("init schema twice: %v", err)
	}

	exerciseStore(t, NewSqliteStore(conn))
}

func TestSqliteStoreRejectsEmptyKey(t *testing.T) {
	conn, err := db.OpenSqlite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	s := NewSqliteStore(conn)
	if err := s.Set(context.Background(), " ", []byte("x")); err == nil {
		t.Fatal("expected error for empty key")
	}
}
