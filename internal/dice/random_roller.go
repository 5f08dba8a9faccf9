package dice

import (
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller with a seeded math/rand source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded with seed, or with the current
// time when seed is 0
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float implements Roller.Float
func (r *randomRoller) Float() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
