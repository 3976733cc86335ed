// Package list prints the stored transactions.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"fintrack/cmd/root"
)

// Cmd represents the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored transactions",
	Run:   listFunc,
}

func listFunc(cmd *cobra.Command, args []string) {
	transactions := root.Store.All()
	if len(transactions) == 0 {
		fmt.Println("No transactions recorded.")
		return
	}

	for i, t := range transactions {
		marker := " "
		if t.AISuggested {
			marker = "*"
		}
		fmt.Printf("%3d  %s  %10s  %-14s%s %-13s %s  (%s)\n",
			i, t.Date, t.Amount.StringFixed(2), t.Category.DisplayName(), marker,
			t.Source.DisplayName(), t.Description, t.ID)
	}
	fmt.Printf("%d transaction(s). * = AI-suggested category\n", len(transactions))
}
