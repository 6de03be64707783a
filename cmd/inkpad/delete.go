package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpad/inkpad/pkg/core"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long:  `Delete a note. Deleting the active note promotes the newest remaining one.`,
	Args:  cobra.ExactArgs(1),
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

		if !store.Delete(ctx, id) {
			fatal("No such note", core.ErrNotFound)
		}
		fmt.Printf("Deleted %s\n", shortID(id))
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
