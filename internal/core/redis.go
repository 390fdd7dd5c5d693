// AngelaMos | 2026
// redis.go

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/socialdash/internal/config"
)

const redisPingTimeout = 2 * time.Second

// Redis is an optional connection. A nil *Redis means redis is not
// configured; Client, Checker and Close all accept it.
type Redis struct {
	client *redis.Client
}

// NewRedis returns nil without error when no URL is configured.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.PoolTimeout = 30 * time.Second
	opts.ConnMaxIdleTime = 5 * time.Minute

	r := &Redis{client: redis.NewClient(opts)}
	if err := r.Ping(ctx); err != nil {
		_ = r.client.Close() //nolint:errcheck // cleanup on connection failure
		return nil, err
	}

	return r, nil
}

// Client backs the rate limiter. Nil makes the limiter use its in-process
// buckets.
func (r *Redis) Client() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

// Checker returns r as a readiness check, or a nil interface when redis is
// not configured.
func (r *Redis) Checker() interface{ Ping(context.Context) error } {
	if r == nil {
		return nil
	}
	return r
}

func (r *Redis) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := r.client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
