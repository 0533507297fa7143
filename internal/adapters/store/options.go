package store

import "github.com/okian/varsity/pkg/logger"

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithNamespace sets the shared key prefix for all stored values.
func WithNamespace(namespace string) Option {
	return func(s *Store) {
		if namespace != "" {
			s.namespace = namespace
		}
	}
}

// WithLogger sets the logger used for recovered-fault warnings.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}
