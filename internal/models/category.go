package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies a transaction. The vocabulary is closed: every value
// carries a display name and an income/expense polarity, and unknown names
// resolve to CategoryUncategorized.
type Category string

// Expense categories
const (
	CategoryGroceries     Category = "GROCERIES"
	CategoryRent          Category = "RENT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryTransport     Category = "TRANSPORT"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryDiningOut     Category = "DINING_OUT"
	CategoryShopping      Category = "SHOPPING"
	CategoryHealthcare    Category = "HEALTHCARE"
	CategoryEducation     Category = "EDUCATION"
	CategoryInsurance     Category = "INSURANCE"
	CategoryOtherExpense  Category = "OTHER_EXPENSE"
	CategoryGiftGiven     Category = "GIFT_GIVEN"
)

// Income categories
const (
	CategorySalary       Category = "SALARY"
	CategoryInvestment   Category = "INVESTMENT"
	CategoryGiftReceived Category = "GIFT_RECEIVED"
	CategoryOtherIncome  Category = "OTHER_INCOME"
)

// CategoryUncategorized is the sentinel for transactions still pending
// classification. It counts as an expense category.
const CategoryUncategorized Category = "UNCATEGORIZED"

type categoryInfo struct {
	display string
	income  bool
}

var categoryTable = map[Category]categoryInfo{
	CategoryGroceries:     {"Groceries", false},
	CategoryRent:          {"Rent", false},
	CategoryUtilities:     {"Utilities", false},
	CategoryTransport:     {"Transport", false},
	CategoryEntertainment: {"Entertainment", false},
	CategoryDiningOut:     {"Dining Out", false},
	CategoryShopping:      {"Shopping", false},
	CategoryHealthcare:    {"Healthcare", false},
	CategoryEducation:     {"Education", false},
	CategoryInsurance:     {"Insurance", false},
	CategoryOtherExpense:  {"Other Expense", false},
	CategoryGiftGiven:     {"Gift Given", false},
	CategorySalary:        {"Salary", true},
	CategoryInvestment:    {"Investment", true},
	CategoryGiftReceived:  {"Gift Received", true},
	CategoryOtherIncome:   {"Other Income", true},
	CategoryUncategorized: {"Uncategorized", false},
}

// categoryOrder fixes the display ordering for pickers and listings.
var categoryOrder = []Category{
	CategoryGroceries, CategoryRent, CategoryUtilities, CategoryTransport,
	CategoryEntertainment, CategoryDiningOut, CategoryShopping,
	CategoryHealthcare, CategoryEducation, CategoryInsurance,
	CategoryOtherExpense, CategorySalary, CategoryInvestment,
	CategoryGiftReceived, CategoryOtherIncome, CategoryGiftGiven,
	CategoryUncategorized,
}

// Categories returns all known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is part of the closed vocabulary.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// DisplayName returns the human-readable name for the category.
func (c Category) DisplayName() string {
	if info, ok := categoryTable[c]; ok {
		return info.display
	}
	return string(c)
}

// IsIncome reports the category's income/expense polarity. This flag, not the
// amount sign, is authoritative for classification logic.
func (c Category) IsIncome() bool {
	return categoryTable[c].income
}

func (c Category) String() string {
	return c.DisplayName()
}

// ParseCategory resolves an upper-snake-case category name strictly,
// returning an error for names outside the vocabulary.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(name)))
	if !c.Valid() {
		return CategoryUncategorized, fmt.Errorf("unknown category %q", name)
	}
	return c, nil
}

// CategoryFromName resolves a category name leniently: unknown names fall
// back to CategoryUncategorized.
func CategoryFromName(name string) Category {
	c, err := ParseCategory(name)
	if err != nil {
		return CategoryUncategorized
	}
	return c
}

// CategoryFromDisplayName resolves a display name case-insensitively,
// falling back to CategoryUncategorized.
func CategoryFromDisplayName(text string) Category {
	for c, info := range categoryTable {
		if strings.EqualFold(info.display, text) {
			return c
		}
	}
	return CategoryUncategorized
}

// UnmarshalJSON resolves persisted category names leniently so a data file
// written by a newer version never fails the whole load.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*c = CategoryFromName(name)
	return nil
}
