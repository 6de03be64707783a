package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkpad/inkpad/pkg/app"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import plain text files as notes",
	Long:  `Import .txt or .md files. Each file becomes one note titled after the filename.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		ctx := context.Background()
		store.Load(ctx)

		for _, path := range args {
			if !app.Accepts(path, "") {
				fatal("Unsupported file type", fmt.Errorf("%s: only .txt and .md files can be imported", path))
			}
			data, err := os.ReadFile(path)
			if err != nil {
				fatal("Failed to read file", err)
			}
			n := store.ImportText(ctx, string(data), path)
			fmt.Printf("Imported %s  %s\n", shortID(n.ID), n.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
