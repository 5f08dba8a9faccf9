package grids

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/roomease/internal/repositories/grids TimeProvider

// TimeProvider stamps SavedAt on stored records
type TimeProvider interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystemClock returns a TimeProvider reading the wall clock in UTC
func NewSystemClock() TimeProvider {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
