package cache

import (
	"context"
	"encoding/json"
	"time"
)

// lookup reads key into dest. Anything short of a clean hit, including
// an unreachable Redis or a payload that no longer unmarshals, reports
// a miss.
func lookup(ctx context.Context, key string, dest any) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// store writes v under key with ttl. Best-effort.
func store(ctx context.Context, key string, v any, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = client.Set(ctx, key, raw, ttl).Err()
}

// Invalidate drops the given keys. Best-effort.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	_ = client.Del(ctx, keys...).Err()
}

// CacheAside serves dest from Redis when possible, otherwise runs fetch
// and stores what it produced. fetch must write into the value dest
// points at; its error is the only one CacheAside surfaces.
func CacheAside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if lookup(ctx, key, dest) {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	store(ctx, key, dest, ttl)
	return nil
}
