package grids

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed grid repository with the wall clock
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:       client,
		TimeProvider: NewSystemClock(),
		TTL:          ttl,
	})
}
