package services

import (
	"github.com/KirkDiggler/roomease/internal/allocation"
	"github.com/KirkDiggler/roomease/internal/booking"
	"github.com/KirkDiggler/roomease/internal/config"
	"github.com/KirkDiggler/roomease/internal/dice"
	"github.com/KirkDiggler/roomease/internal/repositories/grids"
	"github.com/KirkDiggler/roomease/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	BookingService booking.Service
	GridRepository grids.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Booking        config.BookingConfig
	GridRepository grids.Repository // Optional, in-memory when nil
	Roller         dice.Roller      // Optional, seeded from Booking.RandomSeed when nil
	UUIDGenerator  uuid.Generator   // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	gridRepo := cfg.GridRepository
	if gridRepo == nil {
		gridRepo = grids.NewInMemoryRepository(nil)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(cfg.Booking.RandomSeed)
	}

	probability := cfg.Booking.OccupancyProbability
	bookingService := booking.NewService(&booking.ServiceConfig{
		Repository:         gridRepo,
		Allocator:          allocation.NewOptimizer(nil),
		Roller:             roller,
		UUIDGenerator:      cfg.UUIDGenerator,
		Layout:             cfg.Booking.Layout,
		SessionID:          cfg.Booking.SessionID,
		DefaultProbability: &probability,
		SearchTimeout:      cfg.Booking.SearchTimeout,
	})

	return &Provider{
		BookingService: bookingService,
		GridRepository: gridRepo,
	}
}
