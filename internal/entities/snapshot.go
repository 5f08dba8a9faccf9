package entities

import (
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
)

// Snapshot is the flat serializable form of a Grid: one slice of room
// records per floor, in floor and index order.
type Snapshot [][]Room

// ToSnapshot captures the full grid state
func (g *Grid) ToSnapshot() Snapshot {
	return Snapshot(g.cloneFloors())
}

// Layout derives the per-floor room counts the snapshot was taken from
func (s Snapshot) Layout() Layout {
	layout := make(Layout, len(s))
	for f, floor := range s {
		layout[f] = len(floor)
	}
	return layout
}

// BookedCount returns how many rooms in the snapshot are booked
func (s Snapshot) BookedCount() int {
	booked := 0
	for _, floor := range s {
		for _, room := range floor {
			if room.Booked {
				booked++
			}
		}
	}
	return booked
}

// FromSnapshot restores a grid, requiring the snapshot to match layout exactly
func FromSnapshot(layout Layout, s Snapshot) (*Grid, error) {
	grid, err := NewGridFromLayout(layout)
	if err != nil {
		return nil, err
	}

	if len(s) != len(layout) {
		return nil, roomerr.InvalidSnapshotf("snapshot has %d floors, expected %d", len(s), len(layout))
	}

	for f, floor := range s {
		if len(floor) != layout[f] {
			return nil, roomerr.InvalidSnapshotf("floor %d has %d rooms, expected %d", f+1, len(floor), layout[f]).
				WithMeta("floor", f+1)
		}
		for i, room := range floor {
			want := grid.floors[f][i]
			if room.ID != want.ID || room.Floor != want.Floor || room.Index != want.Index {
				return nil, roomerr.InvalidSnapshotf("room at floor %d position %d is %q (floor %d, index %d), expected %q",
					f+1, i+1, room.ID, room.Floor, room.Index, want.ID).
					WithMeta("room_id", room.ID)
			}
			grid.floors[f][i].Booked = room.Booked
		}
	}

	return grid, nil
}
