package booking

//go:generate mockgen -destination=mock/mock_service.go -package=mockbooking -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/roomease/internal/allocation"
	"github.com/KirkDiggler/roomease/internal/dice"
	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
	"github.com/KirkDiggler/roomease/internal/repositories/grids"
	"github.com/KirkDiggler/roomease/internal/uuid"
)

// Repository is an alias for the grid repository interface
type Repository = grids.Repository

// DefaultSessionID names the session used when none is configured
const DefaultSessionID = "default"

// Service defines the booking service interface.
// It owns the grid of one session; every mutation goes through it.
type Service interface {
	// RequestBooking books count rooms with the lowest travel cost
	RequestBooking(ctx context.Context, count int) (*entities.BookingResult, error)

	// RequestSingleBook books one room picked by hand
	RequestSingleBook(ctx context.Context, roomID string) (*entities.BookingResult, error)

	// RequestUnbook frees one room; freeing an available room does nothing
	RequestUnbook(ctx context.Context, roomID string) error

	// RequestReset frees every room
	RequestReset(ctx context.Context)

	// RequestRandomize replaces the grid with random occupancy
	RequestRandomize(ctx context.Context, input *RandomizeInput)

	// ExportSnapshot returns a detached copy of the grid
	ExportSnapshot(ctx context.Context) entities.Snapshot

	// ImportSnapshot replaces the grid with a snapshot of the same layout
	ImportSnapshot(ctx context.Context, snapshot entities.Snapshot) error

	// Grid returns the current grid
	Grid(ctx context.Context) *entities.Grid

	// LastResult returns the most recent booking, nil when cleared
	LastResult(ctx context.Context) *entities.BookingResult

	// Restore loads the persisted grid of the session if there is one
	Restore(ctx context.Context) error
}

// RandomizeInput contains the options for a randomize request
type RandomizeInput struct {
	// Probability that each room is booked, clamped to [0, 1]
	Probability float64
}

// service implements the Service interface
type service struct {
	mu sync.Mutex

	repository         Repository
	allocator          allocation.Allocator
	roller             dice.Roller
	uuidGenerator      uuid.Generator
	sessionID          string
	layout             entities.Layout
	defaultProbability float64
	searchTimeout      time.Duration

	grid       *entities.Grid
	lastResult *entities.BookingResult
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository         Repository           // Required
	Allocator          allocation.Allocator // Optional, the branch and bound optimizer when nil
	Roller             dice.Roller          // Optional, time seeded when nil
	UUIDGenerator      uuid.Generator       // Optional
	Layout             entities.Layout      // Optional, the default hotel when empty
	SessionID          string               // Optional
	DefaultProbability *float64             // Optional, 0.3 when nil
	SearchTimeout      time.Duration        // Optional, unbounded when zero
}

// NewService creates a new booking service holding an empty grid
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	layout := cfg.Layout
	if len(layout) == 0 {
		layout = entities.DefaultLayout()
	}
	grid, err := entities.NewGridFromLayout(layout)
	if err != nil {
		panic("invalid layout: " + err.Error())
	}

	svc := &service{
		repository:         cfg.Repository,
		allocator:          cfg.Allocator,
		roller:             cfg.Roller,
		uuidGenerator:      cfg.UUIDGenerator,
		sessionID:          cfg.SessionID,
		layout:             layout.Clone(),
		defaultProbability: DefaultOccupancyProbability,
		searchTimeout:      cfg.SearchTimeout,
		grid:               grid,
	}

	if svc.allocator == nil {
		svc.allocator = allocation.NewOptimizer(nil)
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller(0)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.sessionID == "" {
		svc.sessionID = DefaultSessionID
	}
	if cfg.DefaultProbability != nil {
		svc.defaultProbability = *cfg.DefaultProbability
	}

	return svc
}

// RequestBooking books count rooms with the lowest travel cost
func (s *service) RequestBooking(ctx context.Context, count int) (*entities.BookingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	searchCtx := ctx
	if s.searchTimeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.searchTimeout)
		defer cancel()
	}

	outcome, err := BookByCount(searchCtx, s.grid, count, s.allocator)
	if err != nil {
		return nil, err
	}

	result := &entities.BookingResult{
		ID:         s.uuidGenerator.New(),
		Kind:       entities.BookingKindOptimal,
		RoomIDs:    outcome.RoomIDs,
		TravelCost: outcome.TravelCost,
	}
	s.commit(ctx, outcome.Grid, result)

	log.Printf("Session %s: booked %d rooms [%s] with travel cost %d",
		s.sessionID, count, strings.Join(result.RoomIDs, ", "), result.TravelCost)

	return result.Clone(), nil
}

// RequestSingleBook books one room picked by hand
func (s *service) RequestSingleBook(ctx context.Context, roomID string) (*entities.BookingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := BookSingle(s.grid, roomID)
	if err != nil {
		return nil, err
	}

	result := &entities.BookingResult{
		ID:      s.uuidGenerator.New(),
		Kind:    entities.BookingKindManual,
		RoomIDs: outcome.RoomIDs,
	}
	s.commit(ctx, outcome.Grid, result)

	log.Printf("Session %s: booked room %s", s.sessionID, roomID)

	return result.Clone(), nil
}

// RequestUnbook frees one room
func (s *service) RequestUnbook(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := UnbookSingle(s.grid, roomID)
	if err != nil {
		return err
	}

	if next == s.grid {
		return nil
	}

	s.commit(ctx, next, nil)
	log.Printf("Session %s: unbooked room %s", s.sessionID, roomID)
	return nil
}

// RequestReset frees every room
func (s *service) RequestReset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(ctx, ResetAll(s.grid), nil)
	log.Printf("Session %s: reset all rooms", s.sessionID)
}

// RequestRandomize replaces the grid with random occupancy
func (s *service) RequestRandomize(ctx context.Context, input *RandomizeInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	probability := s.defaultProbability
	if input != nil {
		probability = input.Probability
	}

	next := RandomizeOccupancy(s.grid, probability, s.roller)
	s.commit(ctx, next, nil)

	log.Printf("Session %s: randomized occupancy at %.2f, %d of %d rooms booked",
		s.sessionID, clampProbability(probability), next.BookedCount(), s.layout.TotalRooms())
}

// ExportSnapshot returns a detached copy of the grid
func (s *service) ExportSnapshot(ctx context.Context) entities.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.ToSnapshot()
}

// ImportSnapshot replaces the grid with snapshot
func (s *service) ImportSnapshot(ctx context.Context, snapshot entities.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := entities.FromSnapshot(s.layout, snapshot)
	if err != nil {
		return err
	}

	s.commit(ctx, next, nil)
	log.Printf("Session %s: imported snapshot with %d booked rooms", s.sessionID, next.BookedCount())
	return nil
}

// Grid returns the current grid
func (s *service) Grid(ctx context.Context) *entities.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid
}

// LastResult returns a copy of the most recent booking
func (s *service) LastResult(ctx context.Context) *entities.BookingResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastResult.Clone()
}

// Restore loads the persisted grid of the session. A missing record keeps the current grid.
func (s *service) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.repository.Get(ctx, s.sessionID)
	if err != nil {
		if roomerr.IsNotFound(err) {
			log.Printf("Session %s: no saved grid, starting empty", s.sessionID)
			return nil
		}
		return roomerr.Wrapf(err, "failed to load grid for session %s", s.sessionID)
	}

	if !record.Layout.Equal(s.layout) {
		return roomerr.InvalidSnapshotf("saved layout %v does not match configured layout %v", record.Layout, s.layout).
			WithMeta("session_id", s.sessionID)
	}

	grid, err := entities.FromSnapshot(s.layout, record.Snapshot)
	if err != nil {
		return roomerr.Wrapf(err, "saved grid for session %s is invalid", s.sessionID)
	}

	s.grid = grid
	s.lastResult = nil

	log.Printf("Session %s: restored grid saved at %s with %d booked rooms",
		s.sessionID, record.SavedAt.Format(time.RFC3339), grid.BookedCount())
	return nil
}

// commit swaps in the next grid and result, then persists. Callers hold the lock.
func (s *service) commit(ctx context.Context, next *entities.Grid, result *entities.BookingResult) {
	s.grid = next
	s.lastResult = result
	s.persist(ctx)
}

func (s *service) persist(ctx context.Context) {
	err := s.repository.Save(ctx, &grids.Record{
		SessionID: s.sessionID,
		Layout:    s.layout.Clone(),
		Snapshot:  s.grid.ToSnapshot(),
	})
	if err != nil {
		log.Printf("Warning: failed to save grid for session %s: %v", s.sessionID, err)
	}
}
