package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisURI    string
)

// InitRedis connects the shared client. An empty uri leaves RedisClient nil,
// which callers treat as development mode without Redis.
func InitRedis(uri string) error {
	if uri == "" {
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     uri, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := c.Ping(ctx).Result(); err != nil {
		_ = c.Close()
		return fmt.Errorf("failed to connect Redis: %w", err)
	}

	RedisClient = c
	RedisURI = uri
	return nil
}
