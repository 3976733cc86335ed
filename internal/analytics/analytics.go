// Package analytics derives aggregate insights from the stored transactions:
// expense trend, spending habits, budget advice and anomaly detection. Every
// call recomputes the full report from a fresh store snapshot; nothing is
// cached and the store is never mutated.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fintrack/internal/logging"
	"fintrack/internal/models"
)

// NoData is the main-category sentinel when there are no expenses.
const NoData = "No data"

// Advice texts, keyed off the 20% savings-rate threshold.
const (
	AdviceIncreaseSavings = "Consider increasing savings rate"
	AdviceGoodSavings     = "Good savings rate"
)

// anomalyFactor: an expense exceeding this multiple of its category average
// is flagged.
var anomalyFactor = decimal.NewFromInt(3)

var hundred = decimal.NewFromInt(100)

// Snapshotter yields a point-in-time view of the transaction collection.
type Snapshotter interface {
	All() []models.Transaction
}

// Engine computes analysis reports over a transaction store.
type Engine struct {
	store Snapshotter
	log   *logrus.Logger
}

// New creates an analytics engine reading from the given store.
func New(store Snapshotter, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{store: store, log: logger}
}

// Report is one complete analysis snapshot.
type Report struct {
	ExpenseTrend   ExpenseTrend   `json:"expenseTrend"`
	SpendingHabits SpendingHabits `json:"spendingHabits"`
	BudgetAdvice   BudgetAdvice   `json:"budgetAdvice"`
	Anomalies      []Anomaly      `json:"anomalies"`
}

// ExpenseTrend compares the latest month's expenses against the monthly
// average.
type ExpenseTrend struct {
	MonthlyExpenses map[string]decimal.Decimal `json:"monthlyExpenses"`
	AverageExpense  decimal.Decimal            `json:"averageExpense"`
	LastMonth       decimal.Decimal            `json:"lastMonth"`
	TrendPercentage float64                    `json:"trendPercentage"`
	TrendDirection  string                     `json:"trendDirection"`
}

// SpendingHabits summarizes where the money goes per category.
type SpendingHabits struct {
	CategoryExpenses       map[models.Category]decimal.Decimal `json:"categoryExpenses"`
	MainCategory           string                              `json:"mainCategory"`
	MainCategoryPercentage float64                             `json:"mainCategoryPercentage"`
}

// BudgetAdvice relates average monthly income to average monthly expenses.
type BudgetAdvice struct {
	AvgMonthlyIncome  decimal.Decimal `json:"avgMonthlyIncome"`
	AvgMonthlyExpense decimal.Decimal `json:"avgMonthlyExpense"`
	SavingsRate       float64         `json:"savingsRate"`
	SavingsAdvice     string          `json:"savingsAdvice"`
}

// Anomaly flags an expense exceeding three times its category's average.
type Anomaly struct {
	Date             models.Date     `json:"date"`
	Category         models.Category `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	DeviationPercent float64         `json:"deviationPercent"`
}

// Analyze computes all four sub-reports over one consistent snapshot.
func (e *Engine) Analyze() Report {
	transactions := e.store.All()
	e.log.WithField(logging.FieldCount, len(transactions)).Debug("Computing analysis report")

	return Report{
		ExpenseTrend:   e.expenseTrend(transactions),
		SpendingHabits: e.spendingHabits(transactions),
		BudgetAdvice:   e.budgetAdvice(transactions),
		Anomalies:      e.detectAnomalies(transactions),
	}
}

func (e *Engine) expenseTrend(transactions []models.Transaction) ExpenseTrend {
	monthly := monthlyTotals(transactions, false)

	average := meanOfTotals(monthly)

	// Months are sorted ascending so "last month" is always the
	// chronologically latest one, independent of insertion order.
	lastMonth := decimal.Zero
	if len(monthly) > 0 {
		months := sortedKeys(monthly)
		lastMonth = monthly[months[len(months)-1]]
	}

	trendPct := 0.0
	if !average.IsZero() {
		trendPct = lastMonth.Sub(average).Div(average).Mul(hundred).InexactFloat64()
	}

	direction := "Decreasing"
	if trendPct > 0 {
		direction = "Increasing"
	}

	return ExpenseTrend{
		MonthlyExpenses: monthly,
		AverageExpense:  average,
		LastMonth:       lastMonth,
		TrendPercentage: trendPct,
		TrendDirection:  direction,
	}
}

func (e *Engine) spendingHabits(transactions []models.Transaction) SpendingHabits {
	byCategory := make(map[models.Category]decimal.Decimal)
	total := decimal.Zero
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	// Visit categories in sorted name order and require a strictly larger
	// sum to take over, so ties resolve to the alphabetically first name.
	mainCategory := NoData
	mainSum := decimal.Zero
	names := make([]string, 0, len(byCategory))
	for c := range byCategory {
		names = append(names, string(c))
	}
	sort.Strings(names)
	for _, name := range names {
		sum := byCategory[models.Category(name)]
		if mainCategory == NoData || sum.GreaterThan(mainSum) {
			mainCategory = name
			mainSum = sum
		}
	}

	pct := 0.0
	if !total.IsZero() {
		pct = mainSum.Div(total).Mul(hundred).InexactFloat64()
	}

	return SpendingHabits{
		CategoryExpenses:       byCategory,
		MainCategory:           mainCategory,
		MainCategoryPercentage: pct,
	}
}

func (e *Engine) budgetAdvice(transactions []models.Transaction) BudgetAdvice {
	avgIncome := meanOfTotals(monthlyTotals(transactions, true))
	avgExpense := meanOfTotals(monthlyTotals(transactions, false))

	// Zero income would divide by zero; fall back to a rate of 0.
	rate := 0.0
	if !avgIncome.IsZero() {
		rate = avgIncome.Sub(avgExpense).Div(avgIncome).Mul(hundred).InexactFloat64()
	}

	advice := AdviceGoodSavings
	if rate < 20 {
		advice = AdviceIncreaseSavings
	}

	return BudgetAdvice{
		AvgMonthlyIncome:  avgIncome,
		AvgMonthlyExpense: avgExpense,
		SavingsRate:       rate,
		SavingsAdvice:     advice,
	}
}

func (e *Engine) detectAnomalies(transactions []models.Transaction) []Anomaly {
	sums := make(map[models.Category]decimal.Decimal)
	counts := make(map[models.Category]int64)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
		counts[t.Category]++
	}

	averages := make(map[models.Category]decimal.Decimal, len(sums))
	for c, sum := range sums {
		averages[c] = sum.Div(decimal.NewFromInt(counts[c]))
	}

	// The per-category average includes the transaction under test.
	anomalies := []Anomaly{}
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		avg := averages[t.Category]
		if avg.IsZero() {
			continue
		}
		if t.Amount.GreaterThan(avg.Mul(anomalyFactor)) {
			anomalies = append(anomalies, Anomaly{
				Date:             t.Date,
				Category:         t.Category,
				Amount:           t.Amount,
				Description:      t.Description,
				DeviationPercent: t.Amount.Sub(avg).Div(avg).Mul(hundred).InexactFloat64(),
			})
		}
	}
	return anomalies
}

// monthlyTotals groups transactions of one polarity by YYYY-MM month key and
// sums the raw signed amounts.
func monthlyTotals(transactions []models.Transaction, income bool) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Category.IsIncome() != income {
			continue
		}
		key := t.Date.MonthKey()
		totals[key] = totals[key].Add(t.Amount)
	}
	return totals
}

// meanOfTotals returns the arithmetic mean of the map values, zero for an
// empty map.
func meanOfTotals(totals map[string]decimal.Decimal) decimal.Decimal {
	if len(totals) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(totals))))
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
