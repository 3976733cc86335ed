// Package setcategory handles manual category edits.
package setcategory

import (
	"github.com/spf13/cobra"

	"fintrack/cmd/root"
	"fintrack/internal/models"
)

var (
	id       string
	index    int
	category string
)

// Cmd represents the set-category command.
var Cmd = &cobra.Command{
	Use:   "set-category",
	Short: "Manually assign a category to a transaction",
	Long: `Manually assign a category to a stored transaction. A manual assignment
always clears the AI-suggested flag.`,
	Run: setCategoryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&id, "id", "i", "", "Transaction id")
	Cmd.Flags().IntVarP(&index, "index", "n", -1, "List index")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category name (required)")
	_ = Cmd.MarkFlagRequired("category")
}

func setCategoryFunc(cmd *cobra.Command, args []string) {
	parsed, err := models.ParseCategory(category)
	if err != nil {
		root.Log.Fatalf("Invalid --category: %v", err)
	}

	var updated bool
	switch {
	case id != "":
		updated = root.Store.SetCategoryByID(id, parsed)
	case index >= 0:
		updated = root.Store.SetCategoryAt(index, parsed)
	default:
		root.Log.Fatal("Either --id or --index is required")
	}

	if !updated {
		root.Log.Error("No matching transaction found")
		return
	}

	root.Save()
	root.Log.Infof("Category set to %s", parsed.DisplayName())
}
