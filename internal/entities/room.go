package entities

import "fmt"

// RoomStatus is the occupancy state of a single room
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusBooked    RoomStatus = "booked"
)

// MaxRoomsPerFloor is bounded by the two-digit index in room ids
const MaxRoomsPerFloor = 99

// Room is one bookable unit of the hotel
type Room struct {
	ID     string `json:"id"`
	Floor  int    `json:"floor"`
	Index  int    `json:"index"`
	Booked bool   `json:"booked"`
}

// RoomID builds the id of the room at floor/index, e.g. floor 1 index 3 -> "103"
func RoomID(floor, index int) string {
	return fmt.Sprintf("%d%02d", floor, index)
}

// Status returns the occupancy state of the room
func (r Room) Status() RoomStatus {
	if r.Booked {
		return RoomStatusBooked
	}
	return RoomStatusAvailable
}

// Less orders rooms by floor, then by index within the floor
func (r Room) Less(other Room) bool {
	if r.Floor != other.Floor {
		return r.Floor < other.Floor
	}
	return r.Index < other.Index
}

// Compare is Less in the three-way form expected by slices.SortFunc
func (r Room) Compare(other Room) int {
	switch {
	case r.Less(other):
		return -1
	case other.Less(r):
		return 1
	default:
		return 0
	}
}

func (r Room) String() string {
	return r.ID
}

// RoomIDs returns the ids of rooms in the order given
func RoomIDs(rooms []Room) []string {
	ids := make([]string, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}
	return ids
}
