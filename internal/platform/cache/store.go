// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache provides a small byte-oriented key/value store on top of Redis.

It backs the HTTP response cache and the places lookup cache. A miss is not an
error: Get reports it through its boolean result.
*/
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint used while pruning by prefix.
const scanBatch = 200

// Store wraps a Redis client with a fixed key prefix.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a [Store] whose keys all start with prefix.
func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Get returns the cached value for key. The boolean is false on a miss.
func (store *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := store.client.Get(ctx, store.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with the given TTL.
func (store *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := store.client.Set(ctx, store.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Prune deletes every key under the store prefix and returns how many were removed.
func (store *Store) Prune(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)

	for {
		keys, next, err := store.client.Scan(ctx, cursor, store.prefix+"*", scanBatch).Result()
		if err != nil {
			return removed, fmt.Errorf("cache: scan: %w", err)
		}

		if len(keys) > 0 {
			count, err := store.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("cache: prune: %w", err)
			}
			removed += int(count)
		}

		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
