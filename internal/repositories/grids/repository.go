package grids

//go:generate mockgen -destination=mock/mock_repository.go -package=mockgrids -source=repository.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/roomease/internal/entities"
)

// Record is the persisted grid of one booking session
type Record struct {
	SessionID string
	Layout    entities.Layout
	Snapshot  entities.Snapshot
	SavedAt   time.Time
}

// Repository defines the interface for grid snapshot storage
type Repository interface {
	// Save stores the record, replacing any previous one for the session, and stamps SavedAt
	Save(ctx context.Context, record *Record) error

	// Get retrieves the record of a session; a missing record is a not found error
	Get(ctx context.Context, sessionID string) (*Record, error)

	// Delete removes the record of a session; deleting a missing record succeeds
	Delete(ctx context.Context, sessionID string) error

	// List retrieves every stored record ordered by session id
	List(ctx context.Context) ([]*Record, error)
}

func cloneRecord(record *Record) *Record {
	if record == nil {
		return nil
	}

	out := *record
	out.Layout = record.Layout.Clone()
	if record.Snapshot != nil {
		out.Snapshot = make(entities.Snapshot, len(record.Snapshot))
		for f, floor := range record.Snapshot {
			out.Snapshot[f] = make([]entities.Room, len(floor))
			copy(out.Snapshot[f], floor)
		}
	}
	return &out
}
