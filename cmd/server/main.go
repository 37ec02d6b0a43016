package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"waste-route-service/internal/adapters/classifier"
	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/adapters/store"
	"waste-route-service/internal/api"
	"waste-route-service/internal/config"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/services"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the configured store behind the repository port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	repo := repositories.NewKVWasteRepository(kv)

	// Seed the household catalogue on startup for local runs.
	if err := seedIfPresent(ctx, repo, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	depot := domain.Point{Lat: cfg.DepotLat, Lng: cfg.DepotLng, ID: "START"}
	wasteSvc := services.NewWasteService(repo, depot, cfg.MinutesPerKm)
	classifySvc := services.NewClassifyService(classifier.NewMockClassifier(nil), domain.DefaultGeoEntities)

	router := api.NewRouter(wasteSvc, classifySvc)

	log.Printf("Server listening addr=:%s store=%s", cfg.Port, cfg.StoreDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}
}

func seedIfPresent(ctx context.Context, repo *repositories.KVWasteRepository, seedPath string) error {
	if _, err := os.Stat(seedPath); errors.Is(err, os.ErrNotExist) {
		log.Printf("Seed file %q not found, keeping stored households", seedPath)
		return nil
	}

	if err := repositories.SeedHouseholdsFromJSON(ctx, repo, seedPath); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}
