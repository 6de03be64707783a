package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpad/inkpad/pkg/core"
)

var titleCmd = &cobra.Command{
	Use:   "title <id> <new title>",
	Short: "Rename a note",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		ctx := context.Background()
		store.Load(ctx)

		id, ok := resolveID(store, args[0])
		if !ok {
			fatal("No such note", core.ErrNotFound)
		}

		n, err := store.UpdateTitle(ctx, id, args[1])
		if err != nil {
			fatal("Failed to rename note", err)
		}
		fmt.Printf("Renamed %s  %s\n", shortID(n.ID), n.Title)
	},
}

func init() {
	rootCmd.AddCommand(titleCmd)
}
