package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inkpad/inkpad/pkg/tui"
)

var editExportDir string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive editor",
	Long:  `Open the notes in a terminal editor with auto-save. Edits persist after one second of inactivity; switching notes saves immediately.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}

		err = tui.Run(store, tui.Config{
			ExportDir:     editExportDir,
			AutoSaveDelay: cfg.AutoSaveDelay,
			Logger:        slog.Default(),
		})
		if err != nil {
			fatal("Editor failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editExportDir, "dir", "d", ".", "Directory for exported notes")
}
