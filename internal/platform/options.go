package platform

import (
	"log/slog"
	"time"

	"github.com/inkpad/inkpad/pkg/core"
)

// options holds the internal configuration for opening a note store.
type options struct {
	backend core.Backend
	logger  *slog.Logger
	codec   string
	clock   func() time.Time
	newID   func() string
}

// Option defines a functional option for configuring the store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{codec: "json"}
}

// WithLogger sets the logger for the store and the default backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackend injects a custom persistence backend (e.g. in-memory).
// If provided, the default key-value adapter is skipped and the path
// argument is ignored.
func WithBackend(backend core.Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithCodec selects the snapshot encoding of the default backend:
// "json" (default) or "yaml".
func WithCodec(name string) Option {
	return func(o *options) {
		o.codec = name
	}
}

// WithClock pins the store's time source. Useful for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithIDSource pins the store's id generator. Useful for tests.
func WithIDSource(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}
