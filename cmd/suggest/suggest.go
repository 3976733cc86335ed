// Package suggest exposes the categorization engine directly.
package suggest

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fintrack/cmd/root"
)

var (
	description string
	amount      string
)

// Cmd represents the suggest command.
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a category for a description without storing anything",
	Run:   suggestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text description (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "0", "Signed amount; the sign picks income vs expense rules")
	_ = Cmd.MarkFlagRequired("description")
}

func suggestFunc(cmd *cobra.Command, args []string) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.Fatalf("Invalid --amount %q: %v", amount, err)
	}

	category := root.Categorizer.Suggest(description, parsed)
	root.Log.Infof("Suggested category: %s", category.DisplayName())
}
