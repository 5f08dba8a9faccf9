package entities

import (
	"encoding/json"
	"testing"

	roomerr "github.com/KirkDiggler/roomease/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	grid, err := NewGridFromLayout(DefaultLayout())
	require.NoError(t, err)

	grid, err = grid.SetBooked([]string{"101", "505", "1007"}, true)
	require.NoError(t, err)

	snapshot := grid.ToSnapshot()
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored, err := FromSnapshot(DefaultLayout(), decoded)
	require.NoError(t, err)
	assert.True(t, restored.Equal(grid))
	assert.Equal(t, 3, decoded.BookedCount())
	assert.Equal(t, DefaultLayout(), decoded.Layout())
}

func TestSnapshot_RecordFields(t *testing.T) {
	grid, err := NewGrid(1, []int{1})
	require.NoError(t, err)

	data, err := json.Marshal(grid.ToSnapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `[[{"id":"101","floor":1,"index":1,"booked":false}]]`, string(data))
}

func TestSnapshot_IsDetached(t *testing.T) {
	grid, err := NewGrid(1, []int{2})
	require.NoError(t, err)

	snapshot := grid.ToSnapshot()
	snapshot[0][0].Booked = true
	assert.Equal(t, 0, grid.BookedCount())
}

func TestFromSnapshot_Invalid(t *testing.T) {
	layout := Layout{2, 2}
	valid := func() Snapshot {
		grid, err := NewGridFromLayout(layout)
		require.NoError(t, err)
		return grid.ToSnapshot()
	}

	tests := []struct {
		name   string
		mutate func(s Snapshot) Snapshot
	}{
		{
			name: "missing floor",
			mutate: func(s Snapshot) Snapshot {
				return s[:1]
			},
		},
		{
			name: "extra room",
			mutate: func(s Snapshot) Snapshot {
				s[1] = append(s[1], Room{ID: "203", Floor: 2, Index: 3})
				return s
			},
		},
		{
			name: "wrong id",
			mutate: func(s Snapshot) Snapshot {
				s[0][1].ID = "109"
				return s
			},
		},
		{
			name: "swapped rooms",
			mutate: func(s Snapshot) Snapshot {
				s[0][0], s[0][1] = s[0][1], s[0][0]
				return s
			},
		},
		{
			name: "duplicate id",
			mutate: func(s Snapshot) Snapshot {
				s[1][0] = s[0][0]
				return s
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := FromSnapshot(layout, tt.mutate(valid()))
			require.Error(t, err)
			assert.Nil(t, grid)
			assert.True(t, roomerr.Is(err, roomerr.CodeInvalidSnapshot))
		})
	}
}

func TestBookingResult_Affects(t *testing.T) {
	result := &BookingResult{Kind: BookingKindOptimal, RoomIDs: []string{"101", "102"}, TravelCost: 1}
	assert.True(t, result.Affects("102"))
	assert.False(t, result.Affects("201"))

	var empty *BookingResult
	assert.False(t, empty.Affects("101"))

	clone := result.Clone()
	clone.RoomIDs[0] = "999"
	assert.Equal(t, "101", result.RoomIDs[0])
}
