package mongoclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/student-api/cmd/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// New connects to MongoDB using provided configuration and verifies connectivity.
func New(cfg *config.Config) (*mongo.Database, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(cfg.Mongo.ConnectTimeout).
		SetServerSelectionTimeout(cfg.Mongo.ConnectTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(ctx)
		return nil, fmt.Errorf("unable to ping mongodb: %w", err)
	}

	client = c
	return c.Database(cfg.Mongo.Database), nil
}

func Close() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
