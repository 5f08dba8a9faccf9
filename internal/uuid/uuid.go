// Package uuid generates the ids handed out for sessions and bookings,
// behind an interface so tests can pin them.
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// IsValid reports whether id parses as a UUID
func IsValid(id string) bool {
	return uuid.Validate(id) == nil
}
