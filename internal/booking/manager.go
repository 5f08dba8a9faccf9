package booking

import (
	"context"

	"github.com/KirkDiggler/roomease/internal/allocation"
	"github.com/KirkDiggler/roomease/internal/dice"
	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
)

const (
	// MinRequestRooms is the smallest group a single request may book
	MinRequestRooms = 1
	// MaxRequestRooms is the largest group a single request may book
	MaxRequestRooms = 5

	// DefaultOccupancyProbability is the chance each room is booked by a randomize
	DefaultOccupancyProbability = 0.3
)

// Outcome is the grid produced by a booking transition and the rooms it booked
type Outcome struct {
	Grid       *entities.Grid
	RoomIDs    []string
	TravelCost int
}

// BookByCount books the k available rooms with the lowest travel cost.
// The input grid is never modified.
func BookByCount(ctx context.Context, grid *entities.Grid, k int, allocator allocation.Allocator) (*Outcome, error) {
	if k < MinRequestRooms || k > MaxRequestRooms {
		return nil, roomerr.InvalidRequestCount(k, MinRequestRooms, MaxRequestRooms)
	}

	pool := grid.AvailableRooms()
	if len(pool) < k {
		return nil, roomerr.InsufficientAvailability(k, len(pool))
	}

	best, err := allocator.Optimal(ctx, pool, k)
	if err != nil {
		return nil, roomerr.Wrapf(err, "failed to allocate %d rooms", k)
	}

	ids := best.RoomIDs()
	next, err := grid.SetBooked(ids, true)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Grid:       next,
		RoomIDs:    ids,
		TravelCost: best.Cost,
	}, nil
}

// BookSingle books one room picked by hand
func BookSingle(grid *entities.Grid, roomID string) (*Outcome, error) {
	room, ok := grid.Room(roomID)
	if !ok {
		return nil, roomerr.UnknownRoomID(roomID)
	}
	if room.Booked {
		return nil, roomerr.AlreadyBooked(roomID)
	}

	next, err := grid.SetBooked([]string{roomID}, true)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Grid:    next,
		RoomIDs: []string{roomID},
	}, nil
}

// UnbookSingle frees one room. Freeing an available room returns the grid unchanged.
func UnbookSingle(grid *entities.Grid, roomID string) (*entities.Grid, error) {
	room, ok := grid.Room(roomID)
	if !ok {
		return nil, roomerr.UnknownRoomID(roomID)
	}
	if !room.Booked {
		return grid, nil
	}

	return grid.SetBooked([]string{roomID}, false)
}

// ResetAll returns an empty grid of the same layout
func ResetAll(grid *entities.Grid) *entities.Grid {
	return grid.Fresh()
}

// RandomizeOccupancy returns a grid of the same layout where each room is
// booked when the roller's next value is below probability. Rooms are rolled
// in floor then index order. probability is clamped to [0, 1].
func RandomizeOccupancy(grid *entities.Grid, probability float64, roller dice.Roller) *entities.Grid {
	probability = clampProbability(probability)

	fresh := grid.Fresh()
	var booked []string
	for _, room := range fresh.Rooms() {
		if dice.Chance(roller, probability) {
			booked = append(booked, room.ID)
		}
	}

	if len(booked) == 0 {
		return fresh
	}

	next, err := fresh.SetBooked(booked, true)
	if err != nil {
		return fresh
	}
	return next
}

func clampProbability(p float64) float64 {
	switch {
	case p != p: // NaN
		return 0
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
