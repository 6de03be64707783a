// Package app wires the note store, an editing surface and a
// presentation boundary into a working application: debounced
// auto-save, save-before-switch semantics and file transfer
// orchestration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inkpad/inkpad/pkg/core"
)

// DefaultAutoSaveDelay is the idle window after the last content change
// before the open note is persisted.
const DefaultAutoSaveDelay = time.Second

// Config holds the collaborators of a Coordinator. Store, Editor and
// Presenter are required; Files may be nil when export is unused.
type Config struct {
	Store     *core.Store
	Editor    Editor
	Presenter Presenter
	Files     FileAccess
	Logger    *slog.Logger
	// AutoSaveDelay overrides DefaultAutoSaveDelay. Tests shrink it.
	AutoSaveDelay time.Duration
}

// Coordinator owns the open-note pointer and the auto-save timer.
//
// The open note moves Loaded -> Dirty on edit and back on persist;
// dirty just means an auto-save is pending. All mutations of the
// collection go through the store; the coordinator never touches notes
// directly. The mutex stands in for the cooperative event loop the
// design assumes: timer callbacks and user intents are serialized, so
// there is a single logical writer.
type Coordinator struct {
	store     *core.Store
	editor    Editor
	presenter Presenter
	files     FileAccess
	logger    *slog.Logger
	delay     time.Duration

	mu        sync.Mutex
	currentID string
	dirty     bool
	autosave  *time.Timer
}

// New validates the configuration and creates a Coordinator.
func New(cfg Config) (*Coordinator, error) {
	if cfg.Store == nil {
		return nil, errors.New("app: store required")
	}
	if cfg.Editor == nil {
		return nil, errors.New("app: editor required")
	}
	if cfg.Presenter == nil {
		return nil, errors.New("app: presenter required")
	}
	c := &Coordinator{
		store:     cfg.Store,
		editor:    cfg.Editor,
		presenter: cfg.Presenter,
		files:     cfg.Files,
		logger:    cfg.Logger,
		delay:     cfg.AutoSaveDelay,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.delay <= 0 {
		c.delay = DefaultAutoSaveDelay
	}
	return c, nil
}

// Start loads persisted state, opens the active note (creating one if
// none exists) and renders the initial view.
func (c *Coordinator) Start(ctx context.Context) {
	c.store.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.store.Active()
	if !ok {
		n = c.store.Create(ctx, "", "")
	}
	c.currentID = n.ID
	c.editor.SetContent(n.Content)
	c.renderLocked()
	c.presenter.RenderStats(core.ComputeStats(n.Content))
}

// CurrentID returns the id of the open note.
func (c *Coordinator) CurrentID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentID
}

// NewNote flushes the open note, creates a fresh one and opens it.
func (c *Coordinator) NewNote(ctx context.Context) core.Note {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.flushLocked(ctx)
	n := c.store.Create(ctx, "", "")
	c.openLocked(n)
	return n
}

// SelectNote switches the open note. Pending edits of the previously
// open note are flushed before the target's content is loaded, so a
// switch can never lose a write.
func (c *Coordinator) SelectNote(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == c.currentID {
		return nil
	}
	c.flushLocked(ctx)

	n, err := c.store.SetActive(id)
	if err != nil {
		c.presenter.Notify(LevelError, "Note not found")
		return err
	}
	c.openLocked(n)
	return nil
}

// DeleteNote removes a note. When the open note is deleted the
// coordinator falls forward to whatever the store now reports active,
// or creates a fresh note when the collection emptied.
func (c *Coordinator) DeleteNote(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Force-fire rather than cancel: pending edits of the open note are
	// persisted before the collection changes shape.
	c.flushLocked(ctx)
	wasOpen := id == c.currentID

	if !c.store.Delete(ctx, id) {
		c.presenter.Notify(LevelError, "Note not found")
		return core.ErrNotFound
	}

	if wasOpen {
		n, ok := c.store.Active()
		if !ok {
			n = c.store.Create(ctx, "", "")
		}
		c.openLocked(n)
	} else {
		c.renderLocked()
	}
	c.presenter.Notify(LevelSuccess, "Note deleted")
	return nil
}

// RenameNote applies a user-entered title to a note.
func (c *Coordinator) RenameNote(ctx context.Context, id, title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.store.UpdateTitle(ctx, id, title); err != nil {
		c.presenter.Notify(LevelError, "Note not found")
		return err
	}
	c.renderLocked()
	return nil
}

// ContentChanged is the editing surface's change notification. Counters
// update synchronously; persistence is debounced, with every change
// canceling and restarting the pending save so only the last change in
// an idle window triggers one.
func (c *Coordinator) ContentChanged(content string) {
	c.presenter.RenderStats(core.ComputeStats(content))

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dirty = true
	if c.autosave != nil {
		c.autosave.Stop()
	}
	c.autosave = time.AfterFunc(c.delay, c.autoSaveFired)
}

// Flush immediately persists pending edits of the open note, bypassing
// the debounce timer. Used on shutdown and by the hide/close triggers
// of the embedding surface.
func (c *Coordinator) Flush(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushLocked(ctx)
}

// Close flushes and releases the timer. The coordinator must not be
// used afterwards.
func (c *Coordinator) Close(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushLocked(ctx)
	c.cancelAutoSaveLocked()
}

// autoSaveFired runs on the timer goroutine; the mutex serializes it
// against user intents. A flush that won the race leaves dirty unset
// and the fire becomes a no-op.
func (c *Coordinator) autoSaveFired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return
	}
	c.saveCurrentLocked(context.Background())
	c.renderLocked()
}

// flushLocked persists pending edits synchronously. Callers must hold c.mu.
func (c *Coordinator) flushLocked(ctx context.Context) {
	c.cancelAutoSaveLocked()
	if !c.dirty {
		return
	}
	c.saveCurrentLocked(ctx)
}

// saveCurrentLocked writes the editor's content through the store,
// deriving the title from it. Callers must hold c.mu.
func (c *Coordinator) saveCurrentLocked(ctx context.Context) {
	if c.currentID == "" {
		return
	}
	if _, err := c.store.UpdateTitleFromContent(ctx, c.currentID, c.editor.Content()); err != nil {
		c.logger.Warn("auto-save skipped", "note", c.currentID, "error", err)
	}
	c.dirty = false
}

func (c *Coordinator) cancelAutoSaveLocked() {
	if c.autosave != nil {
		c.autosave.Stop()
		c.autosave = nil
	}
}

// openLocked loads a note into the editor and re-renders. Callers must
// hold c.mu and have flushed the previous note.
func (c *Coordinator) openLocked(n core.Note) {
	c.currentID = n.ID
	c.dirty = false
	c.editor.SetContent(n.Content)
	c.renderLocked()
	c.presenter.RenderStats(core.ComputeStats(n.Content))
}

func (c *Coordinator) renderLocked() {
	c.presenter.RenderNotes(c.store.List(), c.store.ActiveID())
}

// errorf notifies the presenter and returns the same message as an error.
func (c *Coordinator) errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	c.presenter.Notify(LevelError, err.Error())
	return err
}
