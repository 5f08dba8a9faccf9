package allocation

import "github.com/KirkDiggler/roomease/internal/entities"

const (
	// FloorWeight is the cost of moving one floor via the stairs
	FloorWeight = 2
	// RoomWeight is the cost of moving one room along a corridor
	RoomWeight = 1
)

// TravelCost measures the walk between the two extreme rooms of a set, the
// extremes being the minimum and maximum under (floor, index) order.
// Rooms strictly between the extremes do not contribute. Sets with fewer
// than two rooms cost 0. The input is not modified.
func TravelCost(rooms []entities.Room) int {
	if len(rooms) < 2 {
		return 0
	}

	first, last := rooms[0], rooms[0]
	for _, room := range rooms[1:] {
		if room.Less(first) {
			first = room
		}
		if last.Less(room) {
			last = room
		}
	}

	return abs(last.Floor-first.Floor)*FloorWeight + abs(last.Index-first.Index)*RoomWeight
}

// StairsCost is the travel time from the stairs, which sit beside the
// first room of the ground floor, to the given room.
func StairsCost(room entities.Room) int {
	return (room.Floor-1)*FloorWeight + (room.Index-1)*RoomWeight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
