// Package cache wraps the shared Redis client. It backs the rate-limit
// middleware and the topic-suggestion response cache; the document store
// itself is read fresh on every request and is deliberately not cached.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/terry1921/stickerstore/config"
)

var RDB *redis.Client

// Connect creates the Redis client. Helpers degrade to no-ops when Redis
// is unavailable, so a missing Redis never breaks a request.
func Connect() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})
}

// Get unmarshals the value at key into dest. Returns false on miss,
// unreachable Redis, or a corrupt entry.
func Get(ctx context.Context, key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value at key with a TTL.
func Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return RDB.Set(ctx, key, data, ttl).Err()
}

// Incr increments key and sets its expiry on the first tick of a window.
// Used by the rate limiter. Returns the post-increment count.
func Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if RDB == nil {
		return 0, nil
	}

	n, err := RDB.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		_ = RDB.Expire(ctx, key, window).Err()
	}
	return n, nil
}
