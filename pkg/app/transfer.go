package app

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// acceptedPattern matches the importable filename suffixes.
const acceptedPattern = "*.{txt,md}"

// acceptedTypes are the importable declared MIME types.
var acceptedTypes = map[string]bool{
	"text/plain":    true,
	"text/markdown": true,
}

// Accepts reports whether a file with the given name and declared MIME
// type is importable. Either signal is enough: sources differ in which
// one they can provide.
func Accepts(name, mimeType string) bool {
	if acceptedTypes[strings.ToLower(strings.TrimSpace(mimeType))] {
		return true
	}
	ok, err := doublestar.Match(acceptedPattern, strings.ToLower(filepath.Base(name)))
	return err == nil && ok
}

// Import validates and reads an uploaded file, imports it as a new note
// and switches to it. Rejection happens before any state mutation.
func (c *Coordinator) Import(ctx context.Context, up Upload) error {
	if !Accepts(up.Name, up.Type) {
		return c.errorf("unsupported file type: only plain text (.txt) and markdown (.md) files can be imported")
	}

	data, err := io.ReadAll(up.Data)
	if err != nil {
		c.logger.Warn("import read failed", "file", up.Name, "error", err)
		return c.errorf("could not read %s", up.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.flushLocked(ctx)
	n := c.store.ImportText(ctx, string(data), up.Name)
	c.openLocked(n)
	c.presenter.Notify(LevelSuccess, "Imported "+n.Title)
	return nil
}

// Export flushes the open note, renders it to plain text and hands the
// bytes and derived filename to the file-save capability.
func (c *Coordinator) Export(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.files == nil {
		return c.errorf("export is not available")
	}
	c.flushLocked(ctx)

	exp, err := c.store.ExportText(c.currentID)
	if err != nil {
		return c.errorf("no note is open")
	}
	if err := c.files.Save(exp.Filename, []byte(exp.Content)); err != nil {
		c.logger.Warn("export write failed", "file", exp.Filename, "error", err)
		return c.errorf("could not save %s", exp.Filename)
	}
	c.presenter.Notify(LevelSuccess, "Exported "+exp.Filename)
	return nil
}
