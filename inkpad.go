package inkpad

import (
	"log/slog"
	"time"

	"github.com/inkpad/inkpad/internal/platform"
	"github.com/inkpad/inkpad/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain note entity.
type Note = core.Note

// Stats is a public alias for the text statistics of a note.
type Stats = core.Stats

// Backend is a public alias for the persistence contract.
type Backend = core.Backend

// Store is a public alias for the note store.
type Store = core.Store

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithLogger sets the logger for the store and the default backend.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBackend injects a custom persistence backend.
func WithBackend(backend core.Backend) Option {
	return platform.WithBackend(backend)
}

// WithCodec selects the snapshot encoding of the default key-value
// backend: "json" or "yaml".
func WithCodec(name string) Option {
	return platform.WithCodec(name)
}

// WithClock pins the store's time source.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithIDSource pins the store's id generator.
func WithIDSource(newID func() string) Option {
	return platform.WithIDSource(newID)
}

// --- Factory ---

// Open builds a note store rooted at path. State is not loaded until
// Store.Load is called.
func Open(path string, opts ...Option) (*core.Store, error) {
	return platform.Open(path, opts...)
}
