// Package kv implements core.Backend on top of a diskv key-value store.
// The snapshot lives under two keys, written together on every save:
// the encoded note collection and the active-note pointer.
package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/inkpad/inkpad/pkg/core"
)

const (
	notesKey  = "notes"
	activeKey = "active"
)

// Config holds the configuration for the key-value backend.
type Config struct {
	// Path is the base directory of the store.
	Path string
	// Codec shapes the notes payload. Defaults to JSON.
	Codec Codec
	// Logger receives watch-loop diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

// Backend is a diskv-backed core.Backend. It also implements
// core.Watchable so embedders can react to writes from other processes.
type Backend struct {
	d      *diskv.Diskv
	path   string
	codec  Codec
	logger *slog.Logger
}

// New creates a key-value backend rooted at cfg.Path.
func New(cfg Config) (*Backend, error) {
	if cfg.Path == "" {
		return nil, errors.New("kv: path required")
	}
	codec := cfg.Codec
	if codec == nil {
		codec = JSONCodec{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("kv: ensure base path: %w", err)
	}
	return &Backend{
		d: diskv.New(diskv.Options{
			BasePath:     cfg.Path,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		path:   cfg.Path,
		codec:  codec,
		logger: logger,
	}, nil
}

// Load reads both keys. A store with no notes key yet yields an empty
// state and no error.
func (b *Backend) Load(ctx context.Context) (core.State, error) {
	data, err := b.d.Read(notesKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.State{}, nil
		}
		return core.State{}, fmt.Errorf("kv: read notes: %w", err)
	}

	notes, err := b.codec.Unmarshal(data)
	if err != nil {
		return core.State{}, fmt.Errorf("kv: decode notes: %w", err)
	}

	state := core.State{Notes: notes}
	if active, err := b.d.Read(activeKey); err == nil {
		state.ActiveID = string(active)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return core.State{}, fmt.Errorf("kv: read active: %w", err)
	}
	return state, nil
}

// Save writes the collection and the active pointer. An unset pointer
// erases the key rather than storing an empty value.
func (b *Backend) Save(ctx context.Context, s core.State) error {
	data, err := b.codec.Marshal(s.Notes)
	if err != nil {
		return fmt.Errorf("kv: encode notes: %w", err)
	}
	if err := b.d.Write(notesKey, data); err != nil {
		return fmt.Errorf("kv: write notes: %w", err)
	}

	if s.ActiveID == "" {
		if err := b.d.Erase(activeKey); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("kv: erase active: %w", err)
		}
		return nil
	}
	if err := b.d.Write(activeKey, []byte(s.ActiveID)); err != nil {
		return fmt.Errorf("kv: write active: %w", err)
	}
	return nil
}
