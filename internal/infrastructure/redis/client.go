package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// connectRetries bounds how often the first ping is retried while Redis
// is still starting.
const connectRetries = 3

// NewClient creates a new Redis client and waits for it to answer a ping.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = time.Second

	ping := func() error {
		return client.Ping(ctx).Err()
	}

	if err := backoff.Retry(ping, backoff.WithContext(backoff.WithMaxRetries(b, connectRetries), ctx)); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
