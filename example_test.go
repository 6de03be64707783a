package inkpad_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/inkpad/inkpad"
)

// Example_basic demonstrates opening a store, creating a note and
// reading it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "inkpad-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := inkpad.Open(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Create a note
	n := store.Create(ctx, "Groceries", "<p>milk and eggs</p>")

	// 2. Read it back
	got, err := store.Get(n.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found note: %s\n", got.Title)
	// Output:
	// Found note: Groceries
}

// Example_derivedTitle demonstrates title derivation from content.
func Example_derivedTitle() {
	tmpDir, err := os.MkdirTemp("", "inkpad-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := inkpad.Open(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	n := store.Create(ctx, "", "")

	updated, err := store.UpdateTitleFromContent(ctx, n.ID, "<p>Meeting agenda</p><p>item one</p>")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Derived title: %s\n", updated.Title)
	// Output:
	// Derived title: Meeting agenda
}
