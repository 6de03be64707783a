package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpad/inkpad/pkg/core"
)

var (
	newTitle   string
	newContent string
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a note and make it the active one. Content is plain text; each line becomes one paragraph.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}

		ctx := context.Background()
		store.Load(ctx)

		markup := core.TextToMarkup(newContent)
		n := store.Create(ctx, newTitle, markup)
		if newTitle == "" && newContent != "" {
			n, _ = store.UpdateTitleFromContent(ctx, n.ID, markup)
		}
		fmt.Printf("Created %s  %s\n", shortID(n.ID), n.Title)
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title (derived from content when omitted)")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content as plain text")
}
