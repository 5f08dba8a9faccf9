package dice

// Roller is the source of randomness for occupancy generation.
// It allows us to inject deterministic implementations for testing.
type Roller interface {
	// Float returns a uniform value in [0, 1)
	Float() float64
}

// Chance rolls once and reports whether the roll landed below probability
func Chance(r Roller, probability float64) bool {
	return r.Float() < probability
}
