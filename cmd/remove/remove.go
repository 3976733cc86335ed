// Package remove handles deleting transactions.
package remove

import (
	"github.com/spf13/cobra"

	"fintrack/cmd/root"
)

var (
	id    string
	index int
)

// Cmd represents the remove command.
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a transaction by id or index",
	Run:   removeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&id, "id", "i", "", "Transaction id to remove")
	Cmd.Flags().IntVarP(&index, "index", "n", -1, "List index to remove")
}

func removeFunc(cmd *cobra.Command, args []string) {
	var removed bool
	switch {
	case id != "":
		removed = root.Store.RemoveByID(id)
	case index >= 0:
		removed = root.Store.RemoveAt(index)
	default:
		root.Log.Fatal("Either --id or --index is required")
	}

	if !removed {
		root.Log.Error("No matching transaction found")
		return
	}

	root.Save()
	root.Log.Info("Transaction removed")
}
