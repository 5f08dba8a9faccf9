package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roomease/internal/config"
	"github.com/KirkDiggler/roomease/internal/repositories/grids"
	"github.com/KirkDiggler/roomease/internal/services"
)

// snapshots of the default hotel run to a few KB; imports may be larger
const maxLineBytes = 1 << 20

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providerConfig := &services.ProviderConfig{
		Booking: cfg.Booking,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.Enabled() {
		opts, optsErr := cfg.Redis.Options()
		if optsErr != nil {
			log.Printf("Failed to build Redis options: %v", optsErr)
			log.Println("Falling back to in-memory grid storage")
		} else {
			log.Printf("Connecting to Redis at: %s", opts.Addr)
			redisClient = redis.NewClient(opts)

			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			pingErr := redisClient.Ping(pingCtx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory grid storage")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				providerConfig.GridRepository = grids.NewRedis(redisClient, cfg.Redis.GridTTL)
				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No Redis configured, using in-memory grid storage")
	}

	defer func() {
		if redisClient == nil {
			return
		}
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
	}()

	provider := services.NewProvider(providerConfig)

	if err := provider.BookingService.Restore(ctx); err != nil {
		log.Printf("Failed to restore session %s, starting empty: %v", cfg.Booking.SessionID, err)
	}

	handler := NewHandler(&HandlerConfig{
		BookingService: provider.BookingService,
	})

	log.Printf("Session %s ready with %d rooms", cfg.Booking.SessionID, cfg.Booking.Layout.TotalRooms())

	if err := run(ctx, handler, os.Stdin, os.Stdout); err != nil {
		log.Printf("Stopped: %v", err)
	}
}

// run reads one command per line until EOF, quit or cancellation
func run(ctx context.Context, handler *Handler, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		if err := encoder.Encode(handler.Handle(ctx, line)); err != nil {
			return err
		}
	}

	return scanner.Err()
}
