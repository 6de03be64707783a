package core

import "time"

// UntitledTitle is the fallback title applied whenever a title mutation
// would leave a note with an empty title.
const UntitledTitle = "Untitled Note"

// ImportedTitle is the fallback title for notes imported without a filename.
const ImportedTitle = "Imported Note"

// Note is the central entity of the domain.
// Content is a flat HTML fragment and is opaque to the store; only the
// markup stripper ever interprets it.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Fields describes a partial update to a note. Nil fields are preserved.
type Fields struct {
	Title   *string
	Content *string
}

// Export is the plain-text rendering of a note, ready to hand to a
// file-save capability.
type Export struct {
	Title    string
	Content  string
	Filename string
}
