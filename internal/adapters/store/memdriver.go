package store

import (
	"context"
	"sync"
)

// MemDriver is an in-memory Driver. It is the default backend and the
// one used throughout the tests.
type MemDriver struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

// NewMemDriver creates an empty in-memory driver.
func NewMemDriver() *MemDriver {
	return &MemDriver{
		data: make(map[string]string),
	}
}

// Get returns the raw value for key, or ErrKeyNotFound.
func (d *MemDriver) Get(ctx context.Context, key string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return "", ErrClosed
	}
	v, ok := d.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

// Put writes the raw value for key.
func (d *MemDriver) Put(ctx context.Context, key string, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.data[key] = value
	return nil
}

// Exists reports whether key has ever been written.
func (d *MemDriver) Exists(ctx context.Context, key string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return false, ErrClosed
	}
	_, ok := d.data[key]
	return ok, nil
}

// Keys returns all keys currently stored.
func (d *MemDriver) Keys(ctx context.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return nil, ErrClosed
	}
	keys := make([]string, 0, len(d.data))
	for k := range d.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// Close marks the driver closed; subsequent operations fail with ErrClosed.
func (d *MemDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}
