// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

func init() {
	// Amounts serialize as plain JSON numbers in the data file, not as
	// quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one recorded financial event. The ID is its identity:
// generated at creation, immutable, and used for equality and lookups.
//
// The amount sign is a convention (>= 0 income, < 0 expense) but it is only
// advisory; Category.IsIncome is authoritative. A mismatch between the two is
// logged as a warning, never rejected.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Source      Source          `json:"source"`
	AISuggested bool            `json:"aiSuggestedCategory"`
}

// NewTransaction builds a validated transaction with a fresh ID. The
// description is trimmed and must be non-empty; category and source must come
// from their closed vocabularies.
func NewTransaction(date Date, description string, amount decimal.Decimal, category Category, source Source, aiSuggested bool) (Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Transaction{}, fmt.Errorf("transaction description must not be empty")
	}
	if date.IsZero() {
		return Transaction{}, fmt.Errorf("transaction date must not be empty")
	}
	if !category.Valid() {
		return Transaction{}, fmt.Errorf("unknown category %q", string(category))
	}
	if !source.Valid() {
		return Transaction{}, fmt.Errorf("unknown source %q", string(source))
	}

	t := Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Source:      source,
		AISuggested: aiSuggested,
	}
	t.warnOnPolarityMismatch()
	return t, nil
}

// SetCategory assigns a category manually. Any manual assignment clears the
// AI-suggested flag unconditionally.
func (t *Transaction) SetCategory(category Category) {
	t.Category = category
	t.AISuggested = false
}

// IsExpense reports whether the transaction counts as an expense, based on
// the category polarity.
func (t *Transaction) IsExpense() bool {
	return !t.Category.IsIncome()
}

// warnOnPolarityMismatch logs when the amount sign contradicts the category
// polarity. The uncategorized sentinel is exempt.
func (t *Transaction) warnOnPolarityMismatch() {
	if t.Category == CategoryUncategorized {
		return
	}
	positive := t.Amount.Sign() >= 0
	if positive && !t.Category.IsIncome() {
		log.WithFields(logrus.Fields{
			"id":       t.ID,
			"amount":   t.Amount.String(),
			"category": string(t.Category),
		}).Warn("Positive amount assigned to expense category")
	} else if !positive && t.Category.IsIncome() {
		log.WithFields(logrus.Fields{
			"id":       t.ID,
			"amount":   t.Amount.String(),
			"category": string(t.Category),
		}).Warn("Negative amount assigned to income category")
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("Transaction{id=%s, date=%s, desc=%q, amount=%s, category=%s, source=%s, ai=%t}",
		t.ID, t.Date, t.Description, t.Amount.StringFixed(2), string(t.Category), string(t.Source), t.AISuggested)
}
