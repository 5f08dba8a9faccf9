package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roomease/internal/config"
	"github.com/KirkDiggler/roomease/internal/repositories/grids"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.Redis.Enabled() {
		cfg.Redis.URL = "redis://localhost:6379/0"
	}

	opts, err := cfg.Redis.Options()
	if err != nil {
		log.Fatalf("Failed to parse Redis config: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := grids.NewRedis(client, cfg.Redis.GridTTL)
	records, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list grids: %v", err)
	}

	fmt.Printf("Found %d grids:\n", len(records))
	for _, record := range records {
		fmt.Printf("  %s: %d/%d rooms booked, %d floors, saved %s\n",
			record.SessionID,
			record.Snapshot.BookedCount(),
			record.Layout.TotalRooms(),
			record.Layout.Floors(),
			record.SavedAt.Format(time.RFC3339),
		)
	}
}
