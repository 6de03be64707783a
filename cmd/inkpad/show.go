package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpad/inkpad/pkg/core"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a note",
	Long:  `Print a note as plain text. Without an id the active note is shown.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		store.Load(context.Background())

		var note core.Note
		if len(args) == 0 {
			n, ok := store.Active()
			if !ok {
				fatal("No active note", core.ErrNotFound)
			}
			note = n
		} else {
			id, ok := resolveID(store, args[0])
			if !ok {
				fatal("No such note", core.ErrNotFound)
			}
			note, _ = store.Get(id)
		}

		stats := core.ComputeStats(note.Content)
		fmt.Printf("# %s\n\n", note.Title)
		if showRaw {
			fmt.Println(note.Content)
		} else {
			fmt.Println(core.StripMarkup(note.Content))
		}
		fmt.Printf("\n%d words, %d characters, %d sentences\n", stats.Words, stats.Characters, stats.Sentences)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the raw markup instead of plain text")
}
