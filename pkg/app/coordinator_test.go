package app_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpad/inkpad/pkg/app"
	"github.com/inkpad/inkpad/pkg/core"
)

// countingBackend is an in-memory core.Backend that counts saves. The
// auto-save timer fires on its own goroutine, so access is locked.
type countingBackend struct {
	mu    sync.Mutex
	state core.State
	saves int
}

func (b *countingBackend) Load(ctx context.Context) (core.State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state, nil
}

func (b *countingBackend) Save(ctx context.Context, s core.State) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = s
	b.saves++
	return nil
}

func (b *countingBackend) saveCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}

type fakeEditor struct {
	mu      sync.Mutex
	content string
}

func (e *fakeEditor) Content() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content
}

func (e *fakeEditor) SetContent(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.content = s
}

// type the user typed without telling SetContent (simulates the widget
// owning its buffer).
func (e *fakeEditor) typeText(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.content = s
}

type fakePresenter struct {
	mu         sync.Mutex
	notes      []core.Note
	activeID   string
	stats      core.Stats
	statsCalls int
	toasts     []string
}

func (p *fakePresenter) RenderNotes(notes []core.Note, activeID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notes = notes
	p.activeID = activeID
}

func (p *fakePresenter) RenderStats(stats core.Stats) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats = stats
	p.statsCalls++
}

func (p *fakePresenter) Notify(level app.Level, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toasts = append(p.toasts, string(level)+": "+message)
}

func (p *fakePresenter) lastToast() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.toasts) == 0 {
		return ""
	}
	return p.toasts[len(p.toasts)-1]
}

type fakeFiles struct {
	saved map[string][]byte
}

func (f *fakeFiles) Save(filename string, data []byte) error {
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	f.saved[filename] = data
	return nil
}

type fixture struct {
	backend   *countingBackend
	store     *core.Store
	editor    *fakeEditor
	presenter *fakePresenter
	files     *fakeFiles
	coord     *app.Coordinator
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()
	f := &fixture{
		backend:   &countingBackend{},
		editor:    &fakeEditor{},
		presenter: &fakePresenter{},
		files:     &fakeFiles{},
	}
	f.store = core.NewStore(f.backend, core.Config{})
	coord, err := app.New(app.Config{
		Store:         f.store,
		Editor:        f.editor,
		Presenter:     f.presenter,
		Files:         f.files,
		AutoSaveDelay: delay,
	})
	require.NoError(t, err)
	f.coord = coord
	return f
}

func TestStartSeedsAndOpens(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.coord.Start(context.Background())

	assert.NotEmpty(t, f.coord.CurrentID())
	assert.Equal(t, f.coord.CurrentID(), f.presenter.activeID)
	require.Len(t, f.presenter.notes, 1)
	assert.Equal(t, f.presenter.notes[0].Content, f.editor.Content())
	assert.Positive(t, f.presenter.statsCalls)
}

func TestContentChangedUpdatesStatsSynchronously(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.coord.Start(context.Background())

	f.coord.ContentChanged("<p>Hello world.</p>")
	assert.Equal(t, core.Stats{Words: 2, Characters: 12, Sentences: 1}, f.presenter.stats)
}

func TestAutoSaveDebounce(t *testing.T) {
	f := newFixture(t, 100*time.Millisecond)
	ctx := context.Background()
	f.coord.Start(ctx)
	id := f.coord.CurrentID()
	base := f.backend.saveCount()

	// A burst of changes within the idle window.
	for _, text := range []string{"<p>d</p>", "<p>dr</p>", "<p>draft</p>"} {
		f.editor.typeText(text)
		f.coord.ContentChanged(text)
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		n, err := f.store.Get(id)
		return err == nil && n.Content == "<p>draft</p>"
	}, time.Second, 5*time.Millisecond, "debounced save never fired")

	// Only the last change in the burst persisted.
	assert.Equal(t, base+1, f.backend.saveCount())

	n, err := f.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "draft", n.Title)
}

func TestSwitchFlushesBeforeLoading(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)

	a := f.coord.CurrentID()
	b := f.coord.NewNote(ctx)
	require.Equal(t, b.ID, f.coord.CurrentID())

	// Edit B, then switch back to A before the timer can fire.
	f.editor.typeText("<p>unsaved edit</p>")
	f.coord.ContentChanged("<p>unsaved edit</p>")
	require.NoError(t, f.coord.SelectNote(ctx, a))

	persisted, err := f.store.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>unsaved edit</p>", persisted.Content, "pending edit lost on switch")
	assert.Equal(t, "unsaved edit", persisted.Title)

	// And A's content is now in the editor.
	noteA, err := f.store.Get(a)
	require.NoError(t, err)
	assert.Equal(t, noteA.Content, f.editor.Content())
	assert.Equal(t, a, f.store.ActiveID())
}

func TestSelectSameNoteIsNoop(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)

	base := f.backend.saveCount()
	require.NoError(t, f.coord.SelectNote(ctx, f.coord.CurrentID()))
	assert.Equal(t, base, f.backend.saveCount())
}

func TestSelectMissingNote(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)

	err := f.coord.SelectNote(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Contains(t, f.presenter.lastToast(), "error")
}

func TestDeleteOpenNoteFallsForward(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)

	first := f.coord.CurrentID()
	second := f.coord.NewNote(ctx)

	require.NoError(t, f.coord.DeleteNote(ctx, second.ID))
	assert.Equal(t, first, f.coord.CurrentID())

	n, err := f.store.Get(first)
	require.NoError(t, err)
	assert.Equal(t, n.Content, f.editor.Content())
}

func TestDeleteLastNoteCreatesFresh(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)

	only := f.coord.CurrentID()
	require.NoError(t, f.coord.DeleteNote(ctx, only))

	replacement := f.coord.CurrentID()
	assert.NotEmpty(t, replacement)
	assert.NotEqual(t, only, replacement)
	assert.Len(t, f.store.List(), 1)
	assert.Equal(t, "", f.editor.Content())
}

func TestRenameNote(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)
	id := f.coord.CurrentID()

	require.NoError(t, f.coord.RenameNote(ctx, id, "  Shopping List  "))
	n, err := f.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Shopping List", n.Title)
	assert.ErrorIs(t, f.coord.RenameNote(ctx, "missing", "x"), core.ErrNotFound)
}

func TestImportRejectsUnsupportedType(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)
	before := f.store.List()

	err := f.coord.Import(ctx, app.Upload{
		Name: "report.pdf",
		Type: "application/pdf",
		Data: strings.NewReader("%PDF-1.4"),
	})
	require.Error(t, err)
	assert.Equal(t, len(before), len(f.store.List()), "rejected upload mutated the collection")
	assert.Contains(t, f.presenter.lastToast(), "error")
}

func TestImportSwitchesToNewNote(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)

	err := f.coord.Import(ctx, app.Upload{
		Name: "ideas.md",
		Type: "text/markdown",
		Data: strings.NewReader("# Big idea\nwrite it down"),
	})
	require.NoError(t, err)

	n, err := f.store.Get(f.coord.CurrentID())
	require.NoError(t, err)
	assert.Equal(t, "ideas", n.Title)
	assert.Equal(t, n.Content, f.editor.Content())
	assert.Equal(t, n.ID, f.store.ActiveID())
}

func TestExportWritesThroughFileAccess(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	f.coord.Start(ctx)
	id := f.coord.CurrentID()

	f.editor.typeText("<p>Final Thoughts</p><p>done</p>")
	f.coord.ContentChanged("<p>Final Thoughts</p><p>done</p>")
	require.NoError(t, f.coord.Export(ctx))

	data, ok := f.files.saved["final_thoughts.txt"]
	require.True(t, ok, "export file not saved: %v", f.files.saved)
	assert.Equal(t, "Final Thoughts\ndone", string(data))

	// Export flushed first.
	n, err := f.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Final Thoughts", n.Title)
}

func TestAccepts(t *testing.T) {
	cases := []struct {
		name, mime string
		want       bool
	}{
		{"notes.txt", "", true},
		{"NOTES.TXT", "", true},
		{"readme.md", "", true},
		{"unknown.bin", "text/plain", true},
		{"clipboard", "text/markdown", true},
		{"report.pdf", "application/pdf", false},
		{"archive.tar.gz", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, app.Accepts(tc.name, tc.mime), "Accepts(%q, %q)", tc.name, tc.mime)
	}
}
