// Package tui is a terminal front end for the note engine. It supplies
// the editing surface and presentation boundary that pkg/app expects,
// built on bubbletea.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkpad/inkpad/pkg/app"
	"github.com/inkpad/inkpad/pkg/core"
)

// Config holds the optional settings of the terminal front end.
type Config struct {
	// ExportDir is where ctrl+e writes exported notes. Defaults to ".".
	ExportDir string
	// AutoSaveDelay overrides the coordinator's idle window.
	AutoSaveDelay time.Duration
	Logger        *slog.Logger
}

// Run loads the store, wires a coordinator to the terminal surfaces and
// blocks until the user quits. Pending edits are flushed on exit.
func Run(store *core.Store, cfg Config) error {
	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "."
	}

	editor := &surface{}
	view := &painter{}

	coord, err := app.New(app.Config{
		Store:         store,
		Editor:        editor,
		Presenter:     view,
		Files:         app.DirFiles(exportDir),
		Logger:        cfg.Logger,
		AutoSaveDelay: cfg.AutoSaveDelay,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	coord.Start(ctx)

	m := newModel(coord, editor, view)
	p := tea.NewProgram(m, tea.WithAltScreen())
	view.setSender(p.Send)
	defer view.setSender(nil)

	if _, err := p.Run(); err != nil {
		return err
	}
	coord.Close(ctx)
	return nil
}
