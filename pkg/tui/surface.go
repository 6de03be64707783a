package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkpad/inkpad/pkg/app"
	"github.com/inkpad/inkpad/pkg/core"
)

// surface implements app.Editor over a plain string buffer. The
// textarea widget is the visible half; the model keeps the two in sync
// after every coordinator call. Content is stored in the markup format,
// the textarea shows its plain-text view.
type surface struct {
	mu      sync.Mutex
	content string
}

func (s *surface) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

func (s *surface) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
}

// refreshMsg asks the program to repaint after an off-loop render
// (the auto-save timer fires on its own goroutine).
type refreshMsg struct{}

// painter implements app.Presenter. Renders are cheap state swaps; the
// actual drawing happens in the model's View from the latest snapshot.
type painter struct {
	mu       sync.Mutex
	notes    []core.Note
	activeID string
	stats    core.Stats
	toast    string
	level    app.Level
	send     func(tea.Msg)
}

func (p *painter) RenderNotes(notes []core.Note, activeID string) {
	p.mu.Lock()
	p.notes = notes
	p.activeID = activeID
	p.mu.Unlock()
	p.wake()
}

func (p *painter) RenderStats(stats core.Stats) {
	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()
	p.wake()
}

func (p *painter) Notify(level app.Level, message string) {
	p.mu.Lock()
	p.toast = message
	p.level = level
	p.mu.Unlock()
	p.wake()
}

// wake asks the program to repaint. Renders fire from inside
// Model.Update and from the auto-save timer while it holds the
// coordinator mutex, and Program.Send blocks until the event loop
// picks the message up, so the send must run on its own goroutine or
// the loop deadlocks on itself.
func (p *painter) wake() {
	p.mu.Lock()
	send := p.send
	p.mu.Unlock()
	if send != nil {
		go send(refreshMsg{})
	}
}

func (p *painter) setSender(send func(tea.Msg)) {
	p.mu.Lock()
	p.send = send
	p.mu.Unlock()
}

type snapshot struct {
	notes    []core.Note
	activeID string
	stats    core.Stats
	toast    string
	level    app.Level
}

func (p *painter) snapshot() snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return snapshot{
		notes:    p.notes,
		activeID: p.activeID,
		stats:    p.stats,
		toast:    p.toast,
		level:    p.level,
	}
}
