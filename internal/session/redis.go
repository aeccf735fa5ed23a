package session

import (
	"context" // Context for Redis operations
	"time"    // TTLs

	"chainwatch/internal/utils" // Redis JSON helpers

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisStore keeps flashes in a Redis list per session
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore whose entries expire after ttl
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func redisKey(sessionID string) string {
	return "flash:" + sessionID
}

func (s *RedisStore) Push(ctx context.Context, sessionID string, m Message) error {
	return utils.PushJSON(ctx, s.rdb, redisKey(sessionID), m, s.ttl)
}

func (s *RedisStore) Pop(ctx context.Context, sessionID string) ([]Message, error) {
	return utils.DrainJSON[Message](ctx, s.rdb, redisKey(sessionID))
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
