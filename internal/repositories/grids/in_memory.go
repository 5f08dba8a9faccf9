package grids

import (
	"context"
	"slices"
	"strings"
	"sync"

	roomerr "github.com/KirkDiggler/roomease/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	records      map[string]*Record
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory grid repository.
// A nil timeProvider uses the wall clock.
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = NewSystemClock()
	}

	return &inMemoryRepository{
		records:      make(map[string]*Record),
		timeProvider: timeProvider,
	}
}

// Save stores a copy of the record
func (r *inMemoryRepository) Save(ctx context.Context, record *Record) error {
	if record == nil {
		return roomerr.InvalidArgument("record cannot be nil")
	}
	if record.SessionID == "" {
		return roomerr.InvalidArgument("session ID is required")
	}

	record.SavedAt = r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Deep copy to avoid external modifications
	r.records[record.SessionID] = cloneRecord(record)
	return nil
}

// Get retrieves a copy of a session's record
func (r *inMemoryRepository) Get(ctx context.Context, sessionID string) (*Record, error) {
	if sessionID == "" {
		return nil, roomerr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[sessionID]
	if !exists {
		return nil, roomerr.NotFoundf("grid not found for session %s", sessionID).
			WithMeta("session_id", sessionID)
	}

	return cloneRecord(record), nil
}

// Delete removes a session's record
func (r *inMemoryRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return roomerr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, sessionID)
	return nil
}

// List retrieves copies of every record ordered by session id
func (r *inMemoryRepository) List(ctx context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*Record, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, cloneRecord(record))
	}

	slices.SortFunc(records, func(a, b *Record) int { return strings.Compare(a.SessionID, b.SessionID) })
	return records, nil
}
