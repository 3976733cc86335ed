// Package analyze runs the analytics engine and prints the report.
package analyze

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"fintrack/cmd/root"
)

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute trend, habit, budget and anomaly reports",
	Long: `Compute the full analysis snapshot over the stored transactions: monthly
expense trend, spending habits per category, budget advice and anomalous
expenses (more than three times the category average).`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	report := root.Analytics.Analyze()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		root.Log.Fatalf("Failed to render report: %v", err)
	}
	fmt.Println(string(data))
}
