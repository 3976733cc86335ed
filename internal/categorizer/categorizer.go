// Package categorizer suggests a spending category for a transaction from its
// free-text description and amount sign. The engine is deterministic and
// stateless: an ordered keyword rule table, first match wins.
package categorizer

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fintrack/internal/logging"
	"fintrack/internal/models"
)

// Engine categorizes transactions against the built-in rule table plus any
// user-defined rules loaded afterwards.
type Engine struct {
	rules []Rule
	log   *logrus.Logger
}

// New creates an engine with the built-in rule table.
func New(logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{rules: BuiltinRules(), log: logger}
}

// Suggest returns the category for the given description and amount.
// Matching is case-insensitive substring search; income rules are only
// consulted for non-negative amounts. When nothing matches, the default is
// Other Income for non-negative amounts and Other Expense otherwise.
func (e *Engine) Suggest(description string, amount decimal.Decimal) models.Category {
	desc := strings.ToLower(description)
	income := amount.Sign() >= 0

	for _, rule := range e.rules {
		if rule.IncomeOnly && !income {
			continue
		}
		if keyword, ok := rule.matches(desc, income); ok {
			e.log.WithFields(logrus.Fields{
				logging.FieldKeyword:  keyword,
				logging.FieldCategory: string(rule.Category),
			}).Debug("Description matched keyword rule")
			return rule.Category
		}
	}

	if income {
		return models.CategoryOtherIncome
	}
	return models.CategoryOtherExpense
}

// SuggestFor is a convenience wrapper over Suggest for a full transaction.
func (e *Engine) SuggestFor(t models.Transaction) models.Category {
	return e.Suggest(t.Description, t.Amount)
}

func (r Rule) matches(desc string, income bool) (string, bool) {
	for _, keyword := range r.Keywords {
		if strings.Contains(desc, strings.ToLower(keyword)) {
			return keyword, true
		}
	}
	if !income {
		for _, keyword := range r.NegativeKeywords {
			if strings.Contains(desc, strings.ToLower(keyword)) {
				return keyword, true
			}
		}
	}
	return "", false
}
