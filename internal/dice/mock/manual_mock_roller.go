package mockdice

import (
	"sync"

	"github.com/KirkDiggler/roomease/internal/dice"
)

var _ dice.Roller = (*ManualMockRoller)(nil)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Once every roll has been used the sequence starts over.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []float64
	rollIndex int
	used      int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller(rolls ...float64) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: rolls,
	}
}

// SetRolls replaces the predetermined rolls
func (m *ManualMockRoller) SetRolls(rolls []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Used returns how many rolls have been taken
func (m *ManualMockRoller) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.used
}

// Float implements dice.Roller.Float. With no rolls configured it returns 0.
func (m *ManualMockRoller) Float() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.used++
	if len(m.rolls) == 0 {
		return 0
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex = (m.rollIndex + 1) % len(m.rolls)
	return roll
}
