// Package docstore owns the process-wide Redis client for the document
// store backend. Like the relational pool, the client is constructed once
// at startup and never reconfigured.
package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store wraps a redis.Client for catalog document access.
type Store struct {
	client *redis.Client
}

// New creates a new Store and verifies connectivity.
func New(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging document store: %w", err)
	}

	return &Store{client: client}, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ping verifies the document store connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Client returns the underlying redis.Client for repository use.
func (s *Store) Client() *redis.Client {
	return s.client
}
