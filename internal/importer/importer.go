// Package importer loads transactions from CSV files into the store.
//
// Expected layout: a header row, then rows of
// date,description,amount,category,source with ISO YYYY-MM-DD dates.
// Malformed rows are skipped with a warning; they never fail the batch.
package importer

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fintrack/internal/categorizer"
	"fintrack/internal/logging"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// row maps one CSV line.
type row struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Source      string `csv:"source"`
}

// Importer turns CSV rows into stored transactions, running uncategorized
// rows through the categorization engine first.
type Importer struct {
	store  *store.Store
	engine *categorizer.Engine
	log    *logrus.Logger
}

// New creates a CSV importer.
func New(s *store.Store, engine *categorizer.Engine, logger *logrus.Logger) *Importer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Importer{store: s, engine: engine, log: logger}
}

// ImportFile reads the CSV file at path, adds every valid row to the store
// and returns the imported transactions in file order. Row-level problems
// (wrong field count, bad date or amount, unknown category or source, empty
// description) skip the row; only file-level problems return an error.
func (i *Importer) ImportFile(path string) ([]models.Transaction, error) {
	i.log.WithField(logging.FieldFile, path).Info("Importing transactions from CSV")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			i.log.WithError(err).Warn("Failed to close file")
		}
	}()

	// Rows with a wrong field count must not abort the batch: missing
	// columns stay empty and fail per-row validation below instead.
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows []row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	imported := make([]models.Transaction, 0, len(rows))
	for n, r := range rows {
		t, err := i.buildTransaction(r)
		if err != nil {
			// Header is line 1, first data row line 2.
			i.log.WithError(err).WithField("line", n+2).Warn("Skipping malformed CSV row")
			continue
		}
		i.store.Add(t)
		imported = append(imported, t)
	}

	i.log.WithFields(logrus.Fields{
		logging.FieldFile: path,
		"imported":        len(imported),
		"skipped":         len(rows) - len(imported),
	}).Info("CSV import finished")
	return imported, nil
}

func (i *Importer) buildTransaction(r row) (models.Transaction, error) {
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.Transaction{}, err
	}
	source, err := models.ParseSource(r.Source)
	if err != nil {
		return models.Transaction{}, err
	}

	// Uncategorized rows get a suggestion before insertion.
	aiSuggested := false
	if category == models.CategoryUncategorized {
		if suggested := i.engine.Suggest(r.Description, amount); suggested != models.CategoryUncategorized {
			category = suggested
			aiSuggested = true
		}
	}

	return models.NewTransaction(date, r.Description, amount, category, source, aiSuggested)
}
