// Package memory provides an in-memory core.Backend. It is the default
// for tests and for embedders that manage persistence themselves.
package memory

import (
	"context"
	"sync"

	"github.com/inkpad/inkpad/pkg/core"
)

// Backend keeps the snapshot in process memory.
type Backend struct {
	mu    sync.RWMutex
	state core.State
	set   bool
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{}
}

// Load returns the last saved snapshot, or an empty state when nothing
// has been saved yet.
func (b *Backend) Load(ctx context.Context) (core.State, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.set {
		return core.State{}, nil
	}
	return b.snapshot(), nil
}

// Save replaces the stored snapshot.
func (b *Backend) Save(ctx context.Context, s core.State) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	notes := make([]core.Note, len(s.Notes))
	copy(notes, s.Notes)
	b.state = core.State{Notes: notes, ActiveID: s.ActiveID}
	b.set = true
	return nil
}

// snapshot copies the state so callers cannot alias internal slices.
// Callers must hold b.mu.
func (b *Backend) snapshot() core.State {
	notes := make([]core.Note, len(b.state.Notes))
	copy(notes, b.state.Notes)
	return core.State{Notes: notes, ActiveID: b.state.ActiveID}
}
