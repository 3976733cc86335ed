// Package add handles recording a new transaction.
package add

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"fintrack/cmd/root"
	"fintrack/internal/models"
)

var (
	date        string
	description string
	amount      string
	category    string
	source      string
)

// Cmd represents the add command.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	Long: `Record a new income or expense transaction. Positive amounts are income,
negative amounts are expenses. When --category is omitted the category is
suggested from the description.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Transaction date (YYYY-MM-DD, default today)")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Free-text description (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Signed amount, e.g. -12.50 (required)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category name (default: suggested from description)")
	Cmd.Flags().StringVarP(&source, "source", "s", string(models.SourceOther), "Payment source name")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) {
	txDate := models.Today()
	if date != "" {
		parsed, err := models.ParseDate(date)
		if err != nil {
			root.Log.Fatalf("Invalid --date: %v", err)
		}
		txDate = parsed
	}

	txAmount, err := decimal.NewFromString(amount)
	if err != nil {
		root.Log.Fatalf("Invalid --amount %q: %v", amount, err)
	}

	txSource, err := models.ParseSource(source)
	if err != nil {
		root.Log.Fatalf("Invalid --source: %v", err)
	}

	aiSuggested := false
	var txCategory models.Category
	if category == "" {
		txCategory = root.Categorizer.Suggest(description, txAmount)
		aiSuggested = true
	} else {
		txCategory, err = models.ParseCategory(category)
		if err != nil {
			root.Log.Fatalf("Invalid --category: %v", err)
		}
	}

	t, err := models.NewTransaction(txDate, description, txAmount, txCategory, txSource, aiSuggested)
	if err != nil {
		root.Log.Fatalf("Invalid transaction: %v", err)
	}

	root.Store.Add(t)
	root.Save()

	root.Log.WithField("id", t.ID).Infof("Recorded %s of %s in %s", t.Date, t.Amount.StringFixed(2), t.Category.DisplayName())
}
