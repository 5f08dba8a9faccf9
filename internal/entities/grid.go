package entities

import (
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
)

// Layout is the per-floor room count table; floor n holds Layout[n-1] rooms
type Layout []int

// DefaultLayout is ten floors of ten rooms, with seven on the top floor
func DefaultLayout() Layout {
	return Layout{10, 10, 10, 10, 10, 10, 10, 10, 10, 7}
}

// Floors returns the number of floors
func (l Layout) Floors() int {
	return len(l)
}

// TotalRooms returns the number of rooms across all floors
func (l Layout) TotalRooms() int {
	total := 0
	for _, count := range l {
		total += count
	}
	return total
}

// Validate checks the layout can produce a grid with unique room ids
func (l Layout) Validate() error {
	if len(l) == 0 {
		return roomerr.InvalidShapef("layout must have at least one floor")
	}
	for f, count := range l {
		if count <= 0 {
			return roomerr.InvalidShapef("floor %d must have at least one room, got %d", f+1, count).
				WithMeta("floor", f+1)
		}
		if count > MaxRoomsPerFloor {
			return roomerr.InvalidShapef("floor %d has %d rooms, at most %d fit a two-digit index", f+1, count, MaxRoomsPerFloor).
				WithMeta("floor", f+1)
		}
	}
	return nil
}

// Equal reports whether both layouts describe the same shape
func (l Layout) Equal(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the layout
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

type position struct {
	floor int
	index int
}

// Grid is the hotel's room occupancy, grouped by floor.
//
// A Grid is a value: every mutation returns a new Grid and leaves the
// receiver untouched. The shape never changes after construction.
type Grid struct {
	layout Layout
	floors [][]Room
	// lookup is read-only after construction and shared between copies
	lookup map[string]position
}

// NewGrid creates a grid with every room available.
// roomsPerFloor must hold exactly floorCount positive entries.
func NewGrid(floorCount int, roomsPerFloor []int) (*Grid, error) {
	if len(roomsPerFloor) != floorCount {
		return nil, roomerr.InvalidShapef("expected %d floor entries, got %d", floorCount, len(roomsPerFloor))
	}
	return NewGridFromLayout(Layout(roomsPerFloor))
}

// NewGridFromLayout creates a grid with every room available
func NewGridFromLayout(layout Layout) (*Grid, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	layout = layout.Clone()
	floors := make([][]Room, len(layout))
	lookup := make(map[string]position, layout.TotalRooms())
	for f, count := range layout {
		floors[f] = make([]Room, count)
		for i := 0; i < count; i++ {
			room := Room{
				ID:    RoomID(f+1, i+1),
				Floor: f + 1,
				Index: i + 1,
			}
			floors[f][i] = room
			lookup[room.ID] = position{floor: f, index: i}
		}
	}

	return &Grid{
		layout: layout,
		floors: floors,
		lookup: lookup,
	}, nil
}

// Layout returns the shape the grid was built with
func (g *Grid) Layout() Layout {
	return g.layout.Clone()
}

// Floors returns a copy of the rooms grouped by floor
func (g *Grid) Floors() [][]Room {
	return g.cloneFloors()
}

// Rooms returns every room ordered by floor, then index
func (g *Grid) Rooms() []Room {
	rooms := make([]Room, 0, len(g.lookup))
	for _, floor := range g.floors {
		rooms = append(rooms, floor...)
	}
	return rooms
}

// AvailableRooms returns the unbooked rooms ordered by floor, then index
func (g *Grid) AvailableRooms() []Room {
	var rooms []Room
	for _, floor := range g.floors {
		for _, room := range floor {
			if !room.Booked {
				rooms = append(rooms, room)
			}
		}
	}
	return rooms
}

// BookedCount returns how many rooms are booked
func (g *Grid) BookedCount() int {
	booked := 0
	for _, floor := range g.floors {
		for _, room := range floor {
			if room.Booked {
				booked++
			}
		}
	}
	return booked
}

// Room looks up a room by id
func (g *Grid) Room(id string) (Room, bool) {
	pos, ok := g.lookup[id]
	if !ok {
		return Room{}, false
	}
	return g.floors[pos.floor][pos.index], true
}

// Status returns the occupancy state of a room
func (g *Grid) Status(id string) (RoomStatus, error) {
	room, ok := g.Room(id)
	if !ok {
		return "", roomerr.UnknownRoomID(id)
	}
	return room.Status(), nil
}

// SetBooked returns a new grid where every listed room has Booked == value.
// Nothing is changed if any id is unknown.
func (g *Grid) SetBooked(ids []string, value bool) (*Grid, error) {
	for _, id := range ids {
		if _, ok := g.lookup[id]; !ok {
			return nil, roomerr.UnknownRoomID(id)
		}
	}

	next := g.clone()
	for _, id := range ids {
		pos := g.lookup[id]
		next.floors[pos.floor][pos.index].Booked = value
	}
	return next, nil
}

// Fresh returns a grid of the same shape with every room available
func (g *Grid) Fresh() *Grid {
	next := g.clone()
	for _, floor := range next.floors {
		for i := range floor {
			floor[i].Booked = false
		}
	}
	return next
}

// Equal reports whether both grids have the same shape and occupancy
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if !g.layout.Equal(other.layout) {
		return false
	}
	for f := range g.floors {
		for i := range g.floors[f] {
			if g.floors[f][i] != other.floors[f][i] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) clone() *Grid {
	return &Grid{
		layout: g.layout,
		floors: g.cloneFloors(),
		lookup: g.lookup,
	}
}

func (g *Grid) cloneFloors() [][]Room {
	floors := make([][]Room, len(g.floors))
	for f, floor := range g.floors {
		floors[f] = make([]Room, len(floor))
		copy(floors[f], floor)
	}
	return floors
}
