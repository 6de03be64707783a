package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _, err := openStore()
		if err != nil {
			fatal("Failed to open store", err)
		}
		store.Load(context.Background())

		notes := store.List()
		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		activeID := store.ActiveID()
		for _, n := range notes {
			marker := " "
			if n.ID == activeID {
				marker = "*"
			}
			fmt.Printf("%s %s  %s  (%s)\n", marker, shortID(n.ID), n.Title, n.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
