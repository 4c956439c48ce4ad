package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/student-api/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetIfAbsent stores the key only when it does not exist yet and reports
// whether it did. Without a client every call succeeds.
func (r *redis) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
