package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// PushJSON appends value to the Redis list at key and refreshes its TTL
func PushJSON(ctx context.Context, rdb redis.Cmdable, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	_, err = rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, b)    // Append entry
		pipe.Expire(ctx, key, ttl) // Keep the list alive for ttl
		return nil
	})
	return err
}

// DrainJSON reads and deletes every entry of the Redis list at key in one transaction
func DrainJSON[T any](ctx context.Context, rdb redis.Cmdable, key string) ([]T, error) {
	var values *redis.StringSliceCmd
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, key, 0, -1) // Read whole list
		pipe.Del(ctx, key)                    // Then drop it
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, err // Redis error
	}
	out := make([]T, 0, len(values.Val()))
	for _, raw := range values.Val() {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err // Corrupt entry
		}
		out = append(out, v)
	}
	return out, nil
}
