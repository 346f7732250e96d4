// Command main runs the verification threshold sweep once and exits.
package main

import (
	"context"
	"log"
	"time"

	"gridrr/internal/config"
	"gridrr/internal/database"
	"gridrr/internal/repository"
	"gridrr/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	svc := service.NewVerificationService(repository.NewVerificationRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	flagged, err := svc.Sweep(ctx)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}

	log.Printf("Sweep complete: %d accounts newly flagged for verification", flagged)
}
