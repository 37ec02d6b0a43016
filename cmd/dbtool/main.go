package main

import (
	"context"
	"log"
	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/adapters/store"
	"waste-route-service/internal/config"

	"github.com/joho/godotenv"
)

// dbtool prepares the configured store: it creates the schema (SQL backends)
// and loads the household catalogue from SEED_PATH.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.StoreDriver == config.StoreMemory {
		log.Fatal("dbtool: STORE_DRIVER=memory has nothing to initialize")
	}

	ctx := context.Background()

	log.Printf("Initializing %s store...", cfg.StoreDriver)
	kv, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("store initialization failed: %v", err)
	}
	defer closeStore()
	log.Println("Store ready.")

	log.Println("Seeding households...")
	repo := repositories.NewKVWasteRepository(kv)
	if err := repositories.SeedHouseholdsFromJSON(ctx, repo, cfg.SeedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
