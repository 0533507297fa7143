package store

import "errors"

// Sentinel kinds for store errors.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrClosed      = errors.New("store closed")
)
