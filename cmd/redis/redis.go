package redisclient

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/student-api/cmd/config"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// New initializes the Redis client and verifies connectivity. When Redis is
// disabled the client stays nil and the repository degrades to no-ops.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}
	if !cfg.Redis.Enabled {
		return nil
	}

	opts := Options(cfg.Redis)
	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", opts.Addr, err)
	}

	client = c
	return nil
}

// Options maps the redis config group onto client options.
func Options(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	}
}

func Get() *redis.Client {
	return client
}

// Set replaces the shared client.
func Set(c *redis.Client) {
	client = c
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
