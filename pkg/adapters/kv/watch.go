package kv

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/inkpad/inkpad/pkg/core"
)

// coalesceWindow batches the burst of filesystem events a single save
// produces into one emitted core.Event.
const coalesceWindow = 50 * time.Millisecond

// Watch observes the store directory and emits an event whenever
// another writer touches the snapshot. The channel closes when ctx is
// canceled.
func (b *Backend) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("kv: create watcher: %w", err)
	}
	if err := watcher.Add(b.path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("kv: watch %s: %w", b.path, err)
	}

	events := make(chan core.Event, 16)
	go b.watchLoop(ctx, watcher, events)
	return events, nil
}

func (b *Backend) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) {
	defer close(events)
	defer watcher.Close()

	var pending *core.Event
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			mapped, relevant := mapEvent(ev)
			if !relevant {
				continue
			}
			pending = &mapped
			fire = time.After(coalesceWindow)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			b.logger.Error("kv watcher error", "error", err)

		case <-fire:
			if pending != nil {
				select {
				case events <- *pending:
				case <-ctx.Done():
					return
				}
				pending = nil
			}
			fire = nil
		}
	}
}

// mapEvent filters to the snapshot keys and classifies the change.
func mapEvent(ev fsnotify.Event) (core.Event, bool) {
	name := filepath.Base(ev.Name)
	if name != notesKey && name != activeKey {
		return core.Event{}, false
	}

	e := core.Event{Timestamp: time.Now().Unix()}
	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		e.Type = core.EventDelete
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		e.Type = core.EventModify
	default:
		return core.Event{}, false
	}
	return e, true
}
