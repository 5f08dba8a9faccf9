package testutils

import (
	"testing"

	"github.com/KirkDiggler/roomease/internal/entities"
	"github.com/stretchr/testify/require"
)

// CreateTestGrid builds a grid from layout with the given rooms booked
func CreateTestGrid(t *testing.T, layout entities.Layout, booked ...string) *entities.Grid {
	t.Helper()

	grid, err := entities.NewGridFromLayout(layout)
	require.NoError(t, err)

	if len(booked) == 0 {
		return grid
	}

	grid, err = grid.SetBooked(booked, true)
	require.NoError(t, err)
	return grid
}

// CreateSmallHotel returns the two floor, two rooms per floor grid used in scenario tests
func CreateSmallHotel(t *testing.T, booked ...string) *entities.Grid {
	t.Helper()
	return CreateTestGrid(t, entities.Layout{2, 2}, booked...)
}

// CreateDefaultHotel returns the full 97 room hotel
func CreateDefaultHotel(t *testing.T, booked ...string) *entities.Grid {
	t.Helper()
	return CreateTestGrid(t, entities.DefaultLayout(), booked...)
}
