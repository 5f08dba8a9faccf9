package grids

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
	"github.com/KirkDiggler/roomease/internal/repositories/grids/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRecord(t *testing.T, sessionID string, booked ...string) *Record {
	t.Helper()
	grid, err := entities.NewGrid(2, []int{3, 3})
	require.NoError(t, err)
	grid, err = grid.SetBooked(booked, true)
	require.NoError(t, err)

	return &Record{
		SessionID: sessionID,
		Layout:    grid.Layout(),
		Snapshot:  grid.ToSnapshot(),
	}
}

func TestInMemoryRepository_SaveAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	timeProvider := mocks.NewMockTimeProvider(ctrl)
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	timeProvider.EXPECT().Now().Return(now)

	repo := NewInMemoryRepository(timeProvider)
	ctx := context.Background()

	record := newRecord(t, "lobby", "101", "203")
	require.NoError(t, repo.Save(ctx, record))
	assert.Equal(t, now, record.SavedAt)

	got, err := repo.Get(ctx, "lobby")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// Stored copies are detached from callers
	got.Snapshot[0][0].Booked = false
	again, err := repo.Get(ctx, "lobby")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Snapshot.BookedCount())
}

func TestInMemoryRepository_GetMissing(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	_, err := repo.Get(context.Background(), "nobody")
	assert.True(t, roomerr.IsNotFound(err))

	_, err = repo.Get(context.Background(), "")
	assert.True(t, roomerr.Is(err, roomerr.CodeInvalidArgument))

	err = repo.Save(context.Background(), nil)
	assert.True(t, roomerr.Is(err, roomerr.CodeInvalidArgument))
}

func TestInMemoryRepository_DeleteAndList(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()

	for _, id := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, repo.Save(ctx, newRecord(t, id)))
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "alpha", records[0].SessionID)
	assert.Equal(t, "bravo", records[1].SessionID)
	assert.Equal(t, "charlie", records[2].SessionID)

	require.NoError(t, repo.Delete(ctx, "bravo"))
	// deleting twice is fine
	require.NoError(t, repo.Delete(ctx, "bravo"))

	records, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
