package app

import (
	"io"

	"github.com/inkpad/inkpad/pkg/core"
)

// Editor is the rich-text editing surface. The widget itself is a black
// box; the coordinator only pushes and pulls content. Change
// notifications flow the other way, via Coordinator.ContentChanged.
type Editor interface {
	Content() string
	SetContent(content string)
}

// Presenter is the rendering boundary. The coordinator calls it after
// every state change; it never calls back into the coordinator from
// within a render.
type Presenter interface {
	RenderNotes(notes []core.Note, activeID string)
	RenderStats(stats core.Stats)
	Notify(level Level, message string)
}

// FileAccess is the injected file-save capability used for export.
type FileAccess interface {
	Save(filename string, data []byte) error
}

// Level classifies a Notify message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Upload carries a user-supplied file into the coordinator. Type is
// the declared MIME type and may be empty when the source only knows
// the filename.
type Upload struct {
	Name string
	Type string
	Data io.Reader
}
