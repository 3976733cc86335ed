// Package persistence round-trips the transaction collection through a single
// human-readable JSON file.
package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"fintrack/internal/fileutils"
	"fintrack/internal/logging"
	"fintrack/internal/models"
)

// filePermission is applied to the data file on save.
const filePermission = 0644

// Gateway is the contract the transaction store persists through.
type Gateway interface {
	// Save serializes the full ordered list to path, overwriting any
	// existing file in one whole-file write.
	Save(transactions []models.Transaction, path string) error
	// Load deserializes the file at path. A missing or empty file yields
	// an empty list, not an error; a corrupt file yields a *ParseError.
	Load(path string) ([]models.Transaction, error)
}

// JSONGateway implements Gateway with pretty-printed JSON.
type JSONGateway struct {
	log *logrus.Logger
}

// NewJSONGateway creates a JSON persistence gateway.
func NewJSONGateway(logger *logrus.Logger) *JSONGateway {
	if logger == nil {
		logger = logrus.New()
	}
	return &JSONGateway{log: logger}
}

// Save writes the transactions to path as an indented JSON array, creating
// parent directories as needed.
func (g *JSONGateway) Save(transactions []models.Transaction, path string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing transactions: %w", err)
	}

	if err := fileutils.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("error writing data file %s: %w", path, err)
	}

	g.log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: len(transactions),
	}).Info("Transactions written to data file")
	return nil
}

// Load reads the transactions back from path.
func (g *JSONGateway) Load(path string) ([]models.Transaction, error) {
	if !fileutils.FileExists(path) {
		g.log.WithField(logging.FieldFile, path).Warn("Data file not found, starting with empty list")
		return []models.Transaction{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading data file %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		g.log.WithField(logging.FieldFile, path).Warn("Data file is empty, starting with empty list")
		return []models.Transaction{}, nil
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	g.log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: len(transactions),
	}).Info("Transactions loaded from data file")
	return transactions, nil
}
