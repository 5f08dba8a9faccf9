package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/roomease/internal/allocation"
	mockdice "github.com/KirkDiggler/roomease/internal/dice/mock"
	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
	"github.com/KirkDiggler/roomease/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAllocator struct {
	err error
}

func (f *failingAllocator) Optimal(ctx context.Context, pool []entities.Room, k int) (*allocation.Allocation, error) {
	return nil, f.err
}

func TestBookByCount_TwoByTwo(t *testing.T) {
	grid := testutils.CreateSmallHotel(t)

	outcome, err := BookByCount(context.Background(), grid, 2, allocation.NewOptimizer(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"101", "102"}, outcome.RoomIDs)
	assert.Equal(t, 1, outcome.TravelCost)
	assert.Equal(t, 2, outcome.Grid.BookedCount())
	assert.Equal(t, 0, grid.BookedCount(), "input grid must not change")
}

func TestBookByCount_LastFreeRoom(t *testing.T) {
	grid := testutils.CreateSmallHotel(t, "101", "102", "201")

	outcome, err := BookByCount(context.Background(), grid, 1, allocation.NewOptimizer(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"202"}, outcome.RoomIDs)
	assert.Equal(t, 0, outcome.TravelCost)
	assert.Empty(t, outcome.Grid.AvailableRooms())
}

func TestBookByCount_InvalidCount(t *testing.T) {
	grid := testutils.CreateDefaultHotel(t)

	for _, count := range []int{-1, 0, 6, 100} {
		outcome, err := BookByCount(context.Background(), grid, count, allocation.NewOptimizer(nil))
		require.Error(t, err)
		assert.Nil(t, outcome)
		assert.True(t, roomerr.Is(err, roomerr.CodeInvalidRequestCount), "count %d", count)
		assert.Equal(t, count, roomerr.GetMeta(err)["count"])
	}
	assert.Equal(t, 0, grid.BookedCount())
}

func TestBookByCount_InsufficientAvailability(t *testing.T) {
	grid := testutils.CreateSmallHotel(t, "101", "102", "202")

	_, err := BookByCount(context.Background(), grid, 2, allocation.NewOptimizer(nil))
	require.Error(t, err)
	assert.True(t, roomerr.Is(err, roomerr.CodeInsufficientAvailability))
	assert.Equal(t, 1, roomerr.GetMeta(err)["available"])
	assert.Equal(t, 3, grid.BookedCount())
}

func TestBookByCount_AllocatorError(t *testing.T) {
	grid := testutils.CreateSmallHotel(t)
	cause := errors.New("search blew up")

	_, err := BookByCount(context.Background(), grid, 2, &failingAllocator{err: cause})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestBookThenUnbook_RestoresGrid(t *testing.T) {
	grid := testutils.CreateDefaultHotel(t, "305", "306", "902")

	outcome, err := BookByCount(context.Background(), grid, 4, allocation.NewOptimizer(nil))
	require.NoError(t, err)

	next := outcome.Grid
	for _, id := range outcome.RoomIDs {
		next, err = UnbookSingle(next, id)
		require.NoError(t, err)
	}
	assert.True(t, next.Equal(grid))
}

func TestBookSingle(t *testing.T) {
	grid := testutils.CreateSmallHotel(t, "201")

	t.Run("books an available room", func(t *testing.T) {
		outcome, err := BookSingle(grid, "102")
		require.NoError(t, err)
		assert.Equal(t, []string{"102"}, outcome.RoomIDs)
		assert.Equal(t, 0, outcome.TravelCost)

		status, err := outcome.Grid.Status("102")
		require.NoError(t, err)
		assert.Equal(t, entities.RoomStatusBooked, status)
	})

	t.Run("already booked", func(t *testing.T) {
		_, err := BookSingle(grid, "201")
		assert.True(t, roomerr.Is(err, roomerr.CodeAlreadyBooked))
		assert.Equal(t, "201", roomerr.GetMeta(err)["room_id"])
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := BookSingle(grid, "301")
		assert.True(t, roomerr.Is(err, roomerr.CodeUnknownRoomID))
	})
}

func TestUnbookSingle(t *testing.T) {
	grid := testutils.CreateSmallHotel(t, "101")

	t.Run("frees a booked room", func(t *testing.T) {
		next, err := UnbookSingle(grid, "101")
		require.NoError(t, err)
		assert.Equal(t, 0, next.BookedCount())
		assert.Equal(t, 1, grid.BookedCount())
	})

	t.Run("available room is a no-op", func(t *testing.T) {
		next, err := UnbookSingle(grid, "102")
		require.NoError(t, err)
		assert.Same(t, grid, next)
	})

	t.Run("unknown room", func(t *testing.T) {
		next, err := UnbookSingle(grid, "1")
		assert.Nil(t, next)
		assert.True(t, roomerr.Is(err, roomerr.CodeUnknownRoomID))
	})
}

func TestResetAll(t *testing.T) {
	grid := testutils.CreateDefaultHotel(t, "101", "1007")

	fresh := ResetAll(grid)
	assert.Equal(t, 0, fresh.BookedCount())
	assert.Equal(t, grid.Layout(), fresh.Layout())
	assert.Equal(t, 2, grid.BookedCount())
}

func TestRandomizeOccupancy(t *testing.T) {
	grid := testutils.CreateSmallHotel(t, "202")

	t.Run("books rooms whose roll is below the probability", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller(0.1, 0.5)

		next := RandomizeOccupancy(grid, 0.3, roller)
		assert.Equal(t, []string{"102", "202"}, entities.RoomIDs(next.AvailableRooms()))
		assert.Equal(t, 4, roller.Used())
	})

	tests := []struct {
		name        string
		probability float64
		wantBooked  int
	}{
		{name: "zero books nothing", probability: 0, wantBooked: 0},
		{name: "one books everything", probability: 1, wantBooked: 4},
		{name: "negative clamps to zero", probability: -0.5, wantBooked: 0},
		{name: "above one clamps to one", probability: 7, wantBooked: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller(0, 0.25, 0.5, 0.999)
			next := RandomizeOccupancy(grid, tt.probability, roller)
			assert.Equal(t, tt.wantBooked, next.BookedCount())
			assert.Equal(t, grid.Layout(), next.Layout())
		})
	}
}
