// Package cache wraps the Redis client used for read-side caching.
// Every helper fails open: a missing or unreachable Redis never breaks
// a request, it only costs the cache hit.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects the package-level client. On failure the client is
// left nil and the helpers degrade to no-ops.
func InitRedis(addr string) {
	c := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		return
	}

	log.Println("Redis connected successfully")
	client = c
}

// GetClient returns the shared client, nil when Redis is unavailable.
func GetClient() *redis.Client {
	return client
}

// Close releases the client connection if one was established and
// returns the package to its cache-less state.
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
