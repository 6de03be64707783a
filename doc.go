// Package inkpad is the Composition Root for the Inkpad note engine.
//
// It connects the core note store (Domain Layer) with the persistence
// adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Inkpad is a note engine for embedders. Notes are short rich-text
// (flat HTML) fragments with derived titles, an active-note pointer and
// automatic persistence. The core is agnostic to both storage and UI:
// the backend is an injected key-value snapshot store, and the editing
// surface and rendering layer are injected capabilities wired up by
// pkg/app.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence and UI details.
//   - **Derived Titles**: Titles follow the first line of content, with sane fallbacks.
//   - **Auto-Save**: Debounced persistence with flush-before-switch semantics (pkg/app).
//   - **Import/Export**: Plain text in, plain text out, with markup framing handled.
//   - **Default Adapter (diskv)**: Out-of-the-box persistent key-value store, JSON or YAML encoded.
//   - **Extensible**: Any store satisfying core.Backend plugs in via WithBackend.
//
// Usage:
//
//	// Open a store with functional options
//	store, err := inkpad.Open("./notes.db",
//		inkpad.WithLogger(logger),
//	)
//
//	// Reconstruct persisted state (seeds a welcome note on first run)
//	store.Load(ctx)
//
//	// Create a note
//	n := store.Create(ctx, "Groceries", "<p>milk</p>")
package inkpad
