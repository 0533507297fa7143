// Package store implements the persistence layer: typed read/write access
// to a flat, namespaced key-value store with default-value fallback and
// corruption tolerance.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/okian/varsity/pkg/logger"
	"github.com/okian/varsity/pkg/metrics"
)

// Driver is the raw, fallible string KV medium underneath a Store.
// Implementations must be safe for concurrent use.
type Driver interface {
	// Get returns the raw value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Put writes the raw value for key, overwriting any existing value.
	Put(ctx context.Context, key string, value string) error
	// Exists reports whether key has ever been written.
	Exists(ctx context.Context, key string) (bool, error)
	// Keys returns all keys currently stored.
	Keys(ctx context.Context) ([]string, error)

	Close() error
}

// Store wraps a Driver with a namespace prefix and a JSON value codec.
// The typed accessors never fail: every storage fault is recovered
// locally by falling back to a caller-supplied default, once, centrally.
type Store struct {
	driver    Driver
	namespace string
	log       logger.Logger
}

// New creates a Store over the given driver.
func New(driver Driver, opts ...Option) *Store {
	s := &Store{
		driver:    driver,
		namespace: "varsity",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Key composes a deterministic, human-readable scope key as
// "{purpose}_{scopeId}", e.g. "settings_trainer" or "watchlist_r1".
func Key(purpose, scope string) string {
	return purpose + "_" + scope
}

func (s *Store) qualified(key string) string {
	return s.namespace + ":" + key
}

// Close closes the underlying driver.
func (s *Store) Close() error {
	return s.driver.Close()
}

// Count returns the number of keys under the store's namespace, best
// effort: a driver fault reads as zero.
func (s *Store) Count(ctx context.Context) int {
	keys, err := s.driver.Keys(ctx)
	if err != nil {
		return 0
	}
	return len(keys)
}

// Get reads and decodes the value under key. On missing key, decode
// failure, or any driver error it returns fallback unmodified; it never
// fails. Decode and driver faults are logged and counted, a missing key
// is the normal fresh-seed path.
func Get[T any](ctx context.Context, s *Store, key string, fallback T) T {
	raw, err := s.driver.Get(ctx, s.qualified(key))
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.fault(ctx, "store read failed", key, err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.fault(ctx, "store value corrupt", key, err)
		return fallback
	}
	return v
}

// Set encodes and writes the value under key. Serialization or driver
// failures are swallowed: the caller observes no error and no partial
// write.
func Set[T any](ctx context.Context, s *Store, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.fault(ctx, "store encode failed", key, err)
		return
	}
	if err := s.driver.Put(ctx, s.qualified(key), string(raw)); err != nil {
		s.fault(ctx, "store write failed", key, err)
		return
	}
	metrics.RecordStoreWrite()
}

// Exists reports whether key has ever been written. It is exposed
// separately from Get so callers can distinguish "never stored, apply
// computed defaults" from "an empty collection was explicitly stored".
// A driver fault reads as never stored.
func Exists(ctx context.Context, s *Store, key string) bool {
	ok, err := s.driver.Exists(ctx, s.qualified(key))
	if err != nil {
		s.fault(ctx, "store presence check failed", key, err)
		return false
	}
	return ok
}

func (s *Store) fault(ctx context.Context, msg, key string, err error) {
	metrics.RecordStoreFaultRecovered()
	if s.log != nil {
		s.log.Warn(ctx, msg, logger.String("key", key), logger.Error(err))
	}
}
