package core

import "context"

// State is the persisted snapshot of the store: the ordered note
// collection (newest first) plus the active-note pointer. The two are
// always written together; the active id is derived state, not an
// independently versioned entity.
type State struct {
	Notes    []Note `json:"notes" yaml:"notes"`
	ActiveID string `json:"activeId,omitempty" yaml:"activeId,omitempty"`
}

// Backend defines the persistence contract for the note store.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism (in-memory, disk KV, ...).
type Backend interface {
	// Load retrieves the last persisted snapshot. An empty State with a
	// nil error means the backend holds no data yet.
	Load(ctx context.Context) (State, error)

	// Save persists the snapshot, replacing any previous one.
	Save(ctx context.Context, s State) error
}

// EventType represents the kind of change observed in a backend.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an externally observed change to persisted state.
// Backends that support watching emit these so an embedding application
// can reload when another process writes the store.
type Event struct {
	Type      EventType
	Timestamp int64 // Unix timestamp
}

// Watchable is implemented by backends that can observe external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
