package services

import (
	"context"
	"testing"

	"github.com/KirkDiggler/roomease/internal/config"
	mockdice "github.com/KirkDiggler/roomease/internal/dice/mock"
	"github.com/KirkDiggler/roomease/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_WiresBookingToRepository(t *testing.T) {
	ctx := context.Background()
	provider := NewProvider(&ProviderConfig{
		Booking: config.BookingConfig{
			SessionID:            "lobby",
			Layout:               entities.Layout{3, 3},
			OccupancyProbability: 0.5,
		},
		Roller: mockdice.NewManualMockRoller(0.1, 0.9),
	})

	provider.BookingService.RequestRandomize(ctx, nil)
	assert.Equal(t, 5, provider.BookingService.Grid(ctx).BookedCount())

	record, err := provider.GridRepository.Get(ctx, "lobby")
	require.NoError(t, err)
	assert.Equal(t, entities.Layout{3, 3}, record.Layout)
	assert.Equal(t, 5, record.Snapshot.BookedCount())
}

func TestNewProvider_ZeroOccupancyProbability(t *testing.T) {
	ctx := context.Background()
	provider := NewProvider(&ProviderConfig{
		Booking: config.BookingConfig{
			Layout:               entities.Layout{2, 2},
			OccupancyProbability: 0,
		},
		Roller: mockdice.NewManualMockRoller(0.01),
	})

	provider.BookingService.RequestRandomize(ctx, nil)
	assert.Equal(t, 0, provider.BookingService.Grid(ctx).BookedCount())
}
