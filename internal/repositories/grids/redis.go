package grids

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	gridKeyPrefix = "grid:"
	sessionsKey   = "grids:sessions"
)

// Data is the JSON document stored per session
type Data struct {
	SessionID string            `json:"session_id"`
	Layout    []int             `json:"layout"`
	Floors    entities.Snapshot `json:"floors"`
	SavedAt   time.Time         `json:"saved_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	// TTL expires idle grids; 0 keeps them forever
	TTL time.Duration
}

// redisRepo implements Repository using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a new Redis-backed grid repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = NewSystemClock()
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          cfg.TTL,
	}
}

func gridKey(sessionID string) string {
	return gridKeyPrefix + sessionID
}

// Save stores the record and indexes its session
func (r *redisRepo) Save(ctx context.Context, record *Record) error {
	if record == nil {
		return roomerr.InvalidArgument("record cannot be nil")
	}
	if record.SessionID == "" {
		return roomerr.InvalidArgument("session ID is required")
	}

	record.SavedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(toData(record))
	if err != nil {
		return fmt.Errorf("failed to marshal grid data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, gridKey(record.SessionID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, sessionsKey, record.SessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save grid in Redis: %w", err)
	}

	return nil
}

// Get retrieves a session's record
func (r *redisRepo) Get(ctx context.Context, sessionID string) (*Record, error) {
	if sessionID == "" {
		return nil, roomerr.InvalidArgument("session ID is required")
	}

	jsonData, err := r.client.Get(ctx, gridKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, roomerr.NotFoundf("grid not found for session %s", sessionID).
				WithMeta("session_id", sessionID)
		}
		return nil, fmt.Errorf("failed to get grid from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal grid data: %w", err)
	}

	return toRecord(&data), nil
}

// Delete removes a session's record and its index entry
func (r *redisRepo) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return roomerr.InvalidArgument("session ID is required")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, gridKey(sessionID))
	pipe.SRem(ctx, sessionsKey, sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete grid from Redis: %w", err)
	}

	return nil
}

// List retrieves every indexed record. Index entries whose grid has expired are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*Record, error) {
	sessionIDs, err := r.client.SMembers(ctx, sessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get grid sessions from Redis: %w", err)
	}

	records := make([]*Record, len(sessionIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range sessionIDs {
		g.Go(func() error {
			record, err := r.Get(gctx, id)
			if err != nil {
				if roomerr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get grid %s: %w", id, err)
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	records = slices.DeleteFunc(records, func(record *Record) bool { return record == nil })
	slices.SortFunc(records, func(a, b *Record) int { return strings.Compare(a.SessionID, b.SessionID) })
	return records, nil
}

func toData(record *Record) *Data {
	return &Data{
		SessionID: record.SessionID,
		Layout:    record.Layout,
		Floors:    record.Snapshot,
		SavedAt:   record.SavedAt,
	}
}

func toRecord(data *Data) *Record {
	return &Record{
		SessionID: data.SessionID,
		Layout:    entities.Layout(data.Layout),
		Snapshot:  data.Floors,
		SavedAt:   data.SavedAt,
	}
}
