package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkpad/inkpad/pkg/app"
	"github.com/inkpad/inkpad/pkg/core"
)

type focus int

const (
	focusEditor focus = iota
	focusList
	focusRename
)

var (
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activePaneStyle = paneStyle.BorderForeground(lipgloss.Color("12"))
	titleStyle      = lipgloss.NewStyle().Bold(true)
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")).Padding(0, 1)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Model is the bubbletea model of the note editor.
type Model struct {
	coord  *app.Coordinator
	editor *surface
	view   *painter

	ta     textarea.Model
	rename textinput.Model

	focus  focus
	cursor int
	width  int
	height int
}

func newModel(coord *app.Coordinator, editor *surface, view *painter) Model {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.Focus()

	rename := textinput.New()
	rename.Placeholder = "New title"
	rename.CharLimit = 120

	m := Model{
		coord:  coord,
		editor: editor,
		view:   view,
		ta:     ta,
		rename: rename,
	}
	m.syncEditor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// syncEditor pushes the surface's content into the textarea. Called
// after every coordinator call that may have loaded a different note.
func (m *Model) syncEditor() {
	m.ta.SetValue(core.StripMarkup(m.editor.Content()))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ta.SetWidth(m.editorWidth())
		m.ta.SetHeight(m.paneHeight())
		return m, nil

	case refreshMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateChild(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	// Global bindings.
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		m.coord.Close(ctx)
		return m, tea.Quit
	case "ctrl+n":
		m.coord.NewNote(ctx)
		m.syncEditor()
		m.cursor = 0
		m.focus = focusEditor
		m.ta.Focus()
		return m, nil
	case "ctrl+s":
		m.coord.Flush(ctx)
		return m, nil
	case "ctrl+e":
		_ = m.coord.Export(ctx)
		return m, nil
	}

	switch m.focus {
	case focusList:
		return m.handleListKey(msg)
	case focusRename:
		return m.handleRenameKey(msg)
	default:
		return m.handleEditorKey(msg)
	}
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.focus = focusList
		m.ta.Blur()
		return m, nil
	}

	before := m.ta.Value()
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if m.ta.Value() != before {
		content := core.TextToMarkup(m.ta.Value())
		m.editor.SetContent(content)
		m.coord.ContentChanged(content)
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	notes := m.view.snapshot().notes

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(notes)-1 {
			m.cursor++
		}
	case "enter", "tab":
		if m.cursor < len(notes) {
			_ = m.coord.SelectNote(ctx, notes[m.cursor].ID)
			m.syncEditor()
		}
		m.focus = focusEditor
		m.ta.Focus()
		return m, textarea.Blink
	case "d":
		if m.cursor < len(notes) {
			_ = m.coord.DeleteNote(ctx, notes[m.cursor].ID)
			m.syncEditor()
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case "r":
		if m.cursor < len(notes) {
			m.rename.SetValue(notes[m.cursor].Title)
			m.rename.Focus()
			m.focus = focusRename
			return m, textinput.Blink
		}
	case "esc":
		m.focus = focusEditor
		m.ta.Focus()
		return m, textarea.Blink
	}
	return m, nil
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		notes := m.view.snapshot().notes
		if m.cursor < len(notes) {
			_ = m.coord.RenameNote(context.Background(), notes[m.cursor].ID, m.rename.Value())
		}
		m.rename.Blur()
		m.focus = focusList
		return m, nil
	case "esc":
		m.rename.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

func (m Model) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusRename:
		m.rename, cmd = m.rename.Update(msg)
	default:
		m.ta, cmd = m.ta.Update(msg)
	}
	return m, cmd
}

const listWidth = 28

func (m Model) editorWidth() int {
	w := m.width - listWidth - 6
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) paneHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.view.snapshot()

	list := m.renderList(snap)
	editor := m.renderEditor()
	status := m.renderStatus(snap)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, list, editor)
	return lipgloss.JoinVertical(lipgloss.Left, panes, status)
}

func (m Model) renderList(snap snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes"))
	b.WriteString("\n\n")

	for i, n := range snap.notes {
		title := n.Title
		if runes := []rune(title); len(runes) > listWidth-4 {
			title = string(runes[:listWidth-4]) + "…"
		}
		line := "  " + title
		if n.ID == snap.activeID {
			line = "* " + title
		}
		if m.focus == focusList && i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.focus == focusRename {
		b.WriteString("\n")
		b.WriteString(m.rename.View())
	}

	style := paneStyle
	if m.focus != focusEditor {
		style = activePaneStyle
	}
	return style.Width(listWidth).Height(m.paneHeight()).Render(b.String())
}

func (m Model) renderEditor() string {
	style := paneStyle
	if m.focus == focusEditor {
		style = activePaneStyle
	}
	return style.Width(m.editorWidth()).Render(m.ta.View())
}

func (m Model) renderStatus(snap snapshot) string {
	counters := fmt.Sprintf("%d words · %d chars · %d sentences",
		snap.stats.Words, snap.stats.Characters, snap.stats.Sentences)

	toast := ""
	if snap.toast != "" {
		if snap.level == app.LevelError {
			toast = "  " + errorStyle.Render(snap.toast)
		} else {
			toast = "  " + successStyle.Render(snap.toast)
		}
	}

	help := dimStyle.Render("  esc:list  ctrl+n:new  ctrl+s:save  ctrl+e:export  ctrl+q:quit")
	return statusStyle.Render(counters) + toast + help
}
