package core

// Seed note used when the backend holds nothing or cannot be read.
const (
	welcomeTitle   = "Welcome"
	welcomeContent = "<p>Welcome to Inkpad!</p>" +
		"<p>This is your first note. Start typing and it will be saved automatically.</p>" +
		"<p>Create more notes, import plain text files, or export any note as .txt.</p>"
)
