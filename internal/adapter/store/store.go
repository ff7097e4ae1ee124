// Package store persists the current booking in a key-value backend.
package store

import (
	"context"
	"fmt"
	"time"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendBadger = "badger"
)

// DefaultKeyPrefix namespaces every key written by the service.
const DefaultKeyPrefix = "route-offers:"

// Config selects and configures a backend.
type Config struct {
	Backend       string
	KeyPrefix     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	BadgerPath    string
	DialTimeout   time.Duration
}

// New opens the configured backend. An empty BadgerPath keeps Badger in memory.
func New(ctx context.Context, cfg Config) (Store, error) {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(ctx, RedisOptions{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			KeyPrefix:   prefix,
			DialTimeout: cfg.DialTimeout,
		})
	case BackendBadger:
		return NewBadgerStore(cfg.BadgerPath, prefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Store is a KeyValueStore that reports its backend.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Close() error
	Backend() string
}
