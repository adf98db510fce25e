package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Page number rendering
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// CachedPages is how many leading pages of a paginated listing get
// invalidated after a write. Later pages age out through the TTL.
const CachedPages = 5

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// DeletePages invalidates the first CachedPages pages of a paginated listing
// for every given page size
func DeletePages(ctx context.Context, rdb *redis.Client, prefix string, pageSizes ...int) {
	for _, size := range pageSizes {
		for page := 1; page <= CachedPages; page++ {
			// Delete one page entry, errors are non-fatal
			_ = DeleteCache(ctx, rdb, prefix+":page:"+strconv.Itoa(page)+":size:"+strconv.Itoa(size))
		}
	}
}
