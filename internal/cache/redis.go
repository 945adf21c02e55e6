package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Simplici0/carcost/internal/tco"
)

// RedisOptions configures the shared cache backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis is a Cache shared between server instances.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects and pings the server.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return &Redis{client: client, ttl: opts.TTL}, nil
}

func (c *Redis) Get(ctx context.Context, key string) (tco.Result, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return tco.Result{}, false, nil
	}
	if err != nil {
		return tco.Result{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	res, err := decode(data)
	if err != nil {
		return tco.Result{}, false, err
	}
	return res, true, nil
}

func (c *Redis) Set(ctx context.Context, key string, r tco.Result) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Redis) Close() error {
	return c.client.Close()
}
