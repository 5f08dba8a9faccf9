package entities

import "slices"

// BookingKind tells how the rooms of a booking were chosen
type BookingKind string

const (
	// BookingKindOptimal rooms were picked by the allocation optimizer
	BookingKindOptimal BookingKind = "optimal"
	// BookingKindManual is a single room picked by the guest
	BookingKindManual BookingKind = "manual"
)

// BookingResult describes the most recent successful booking.
// It is overwritten by the next booking and cleared by unbook, reset and randomize.
type BookingResult struct {
	ID         string      `json:"id"`
	Kind       BookingKind `json:"kind"`
	RoomIDs    []string    `json:"room_ids"` // rooms affected by this booking
	TravelCost int         `json:"travel_cost"`
}

// Affects reports whether roomID was booked by this result
func (b *BookingResult) Affects(roomID string) bool {
	if b == nil {
		return false
	}
	return slices.Contains(b.RoomIDs, roomID)
}

// Clone returns a deep copy
func (b *BookingResult) Clone() *BookingResult {
	if b == nil {
		return nil
	}
	out := *b
	out.RoomIDs = slices.Clone(b.RoomIDs)
	return &out
}
