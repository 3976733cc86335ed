// Package importcsv handles batch CSV imports.
package importcsv

import (
	"github.com/spf13/cobra"

	"fintrack/cmd/root"
	"fintrack/internal/importer"
)

var input string

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import transactions from a CSV file",
	Long: `Import transactions from a CSV file with a header row and columns
date,description,amount,category,source. Rows with category UNCATEGORIZED are
auto-categorized; malformed rows are skipped with a warning.`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) {
	imp := importer.New(root.Store, root.Categorizer, root.Log)
	imported, err := imp.ImportFile(input)
	if err != nil {
		root.Log.Fatalf("Import failed: %v", err)
	}

	root.Save()
	root.Log.Infof("Imported %d transaction(s) from %s", len(imported), input)
}
