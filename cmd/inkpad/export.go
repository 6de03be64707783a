package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkpad/inkpad/pkg/app"
	"github.com/inkpad/inkpad/pkg/core"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a note as a .txt file",
	Long:  `Export a note as plain text, named after its sanitized title. Without an id the active note is exported.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		store.Load(context.Background())

		id := store.ActiveID()
		if len(args) > 0 {
			var ok bool
			if id, ok = resolveID(store, args[0]); !ok {
				fatal("No such note", core.ErrNotFound)
			}
		}
		if id == "" {
			fatal("No active note", core.ErrNotFound)
		}

		exp, err := store.ExportText(id)
		if err != nil {
			fatal("Failed to export note", err)
		}
		if err := app.DirFiles(exportDir).Save(exp.Filename, []byte(exp.Content)); err != nil {
			fatal("Failed to write file", err)
		}
		fmt.Printf("Exported %s\n", filepath.Join(exportDir, exp.Filename))
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Directory to write the exported file into")
}
