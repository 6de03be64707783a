package core

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Title derivation truncates the first content line to this many runes.
const maxDerivedTitle = 50

// Config holds the optional collaborators of a Store. Zero values get
// sensible defaults, so Config{} is valid.
type Config struct {
	Logger *slog.Logger
	// Clock and NewID exist so tests can pin timestamps and ids.
	Clock func() time.Time
	NewID func() string
}

// Store owns the in-memory note collection and the active-note pointer.
// All mutations go through its operations; callers receive copies and
// never alias the collection.
//
// Persistence failures are logged and swallowed: the store is the
// authoritative state while the process lives, and the backend is a
// best-effort mirror.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
	notes    []Note
	activeID string
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend, cfg Config) *Store {
	s := &Store{
		backend: backend,
		logger:  cfg.Logger,
		now:     cfg.Clock,
		newID:   cfg.NewID,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Load reconstructs the collection and active pointer from the backend.
// If the backend holds nothing, or reading it fails, the store seeds a
// single welcome note instead of starting undefined.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()

	state, err := s.backend.Load(ctx)
	if err != nil {
		s.logger.Warn("load failed, seeding default note", "error", err)
	}
	if err == nil && len(state.Notes) > 0 {
		s.notes = state.Notes
		s.activeID = state.ActiveID
		if _, ok := s.lookup(s.activeID); !ok {
			s.activeID = ""
		}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.Create(ctx, welcomeTitle, welcomeContent)
}

// Create generates a fresh note, places it first in the collection,
// makes it active and persists. It never fails.
func (s *Store) Create(ctx context.Context, title, content string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		title = UntitledTitle
	}

	now := s.now()
	n := Note{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]Note{n}, s.notes...)
	s.activeID = n.ID
	s.persist(ctx)
	return n
}

// Get returns the note with the given id, or ErrNotFound.
func (s *Store) Get(id string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.lookup(id)
	if !ok {
		return Note{}, ErrNotFound
	}
	return *n, nil
}

// List returns a copy of the collection in display order.
func (s *Store) List() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Active resolves the active pointer. ok is false when the pointer is
// unset or stale.
func (s *Store) Active() (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.lookup(s.activeID)
	if !ok {
		return Note{}, false
	}
	return *n, true
}

// ActiveID returns the current active pointer, possibly "".
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Update merges the provided fields into the note, bumps UpdatedAt and
// persists. Absent fields are preserved.
func (s *Store) Update(ctx context.Context, id string, fields Fields) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(ctx, id, fields)
}

func (s *Store) update(ctx context.Context, id string, fields Fields) (Note, error) {
	n, ok := s.lookup(id)
	if !ok {
		return Note{}, ErrNotFound
	}
	if fields.Title != nil {
		n.Title = *fields.Title
	}
	if fields.Content != nil {
		n.Content = *fields.Content
	}
	if strings.TrimSpace(n.Title) == "" {
		n.Title = UntitledTitle
	}
	n.UpdatedAt = s.now()
	s.persist(ctx)
	return *n, nil
}

// UpdateTitle trims the new title and applies it, coercing an empty
// result to the untitled fallback.
func (s *Store) UpdateTitle(ctx context.Context, id, title string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		title = UntitledTitle
	}
	return s.update(ctx, id, Fields{Title: &title})
}

// UpdateTitleFromContent stores the new content and derives the title
// from its first non-empty text line, truncated to 50 characters with a
// trailing ellipsis when longer. When the content has no meaningful
// text the title is left untouched.
func (s *Store) UpdateTitleFromContent(ctx context.Context, id, content string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := Fields{Content: &content}
	if line := FirstLine(content); line != "" {
		title := truncateTitle(line)
		fields.Title = &title
	}
	return s.update(ctx, id, fields)
}

func truncateTitle(line string) string {
	runes := []rune(line)
	if len(runes) <= maxDerivedTitle {
		return line
	}
	return string(runes[:maxDerivedTitle]) + "..."
}

// Delete removes the note and reports whether one was removed. Deleting
// the active note promotes the new first note, or clears the pointer
// when the collection becomes empty.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.notes {
		if s.notes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)

	if s.activeID == id {
		if len(s.notes) > 0 {
			s.activeID = s.notes[0].ID
		} else {
			s.activeID = ""
		}
	}
	s.persist(ctx)
	return true
}

// SetActive switches the active pointer after validating the target
// exists. It does not persist by itself; the pointer rides along with
// the next state-changing persist.
func (s *Store) SetActive(id string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.lookup(id)
	if !ok {
		return Note{}, ErrNotFound
	}
	s.activeID = id
	return *n, nil
}

// ExportText renders the note to plain text together with a
// filesystem-safe filename derived from its title.
func (s *Store) ExportText(id string) (Export, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.lookup(id)
	if !ok {
		return Export{}, ErrNotFound
	}
	return Export{
		Title:    n.Title,
		Content:  StripMarkup(n.Content),
		Filename: exportFilename(n.Title),
	}, nil
}

// exportFilename replaces every non-alphanumeric character with an
// underscore, lowercases and appends the .txt extension.
func exportFilename(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String() + ".txt"
}

// ImportText creates a note from plain text. The title comes from the
// filename with its extension stripped, or the imported fallback when
// no filename is given. Each non-blank line becomes one paragraph
// block with markup-significant characters escaped.
func (s *Store) ImportText(ctx context.Context, text, filename string) Note {
	title := ImportedTitle
	if base := filepath.Base(filename); base != "." && base != string(filepath.Separator) {
		if t := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base))); t != "" {
			title = t
		}
	}
	return s.Create(ctx, title, TextToMarkup(text))
}

// lookup finds a note by id. Callers must hold s.mu.
func (s *Store) lookup(id string) (*Note, bool) {
	if id == "" {
		return nil, false
	}
	for i := range s.notes {
		if s.notes[i].ID == id {
			return &s.notes[i], true
		}
	}
	return nil, false
}

// persist writes the snapshot, active pointer included. Callers must
// hold s.mu. Failures are logged, never propagated.
func (s *Store) persist(ctx context.Context) {
	notes := make([]Note, len(s.notes))
	copy(notes, s.notes)
	if err := s.backend.Save(ctx, State{Notes: notes, ActiveID: s.activeID}); err != nil {
		s.logger.Warn("persist failed", "error", err)
	}
}
