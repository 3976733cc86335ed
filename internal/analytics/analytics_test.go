package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/models"
)

// fixedSnapshot is a Snapshotter over a literal transaction list.
type fixedSnapshot []models.Transaction

func (f fixedSnapshot) All() []models.Transaction {
	out := make([]models.Transaction, len(f))
	copy(out, f)
	return out
}

func tx(t *testing.T, date, description, amount string, category models.Category) models.Transaction {
	t.Helper()
	d, err := models.ParseDate(date)
	require.NoError(t, err)
	a, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	out, err := models.NewTransaction(d, description, a, category, models.SourceOther, false)
	require.NoError(t, err)
	return out
}

func TestExpenseTrend(t *testing.T) {
	// Months deliberately out of insertion order; the latest calendar
	// month must still be reported as "last month".
	snapshot := fixedSnapshot{
		tx(t, "2024-03-05", "march groceries", "300", models.CategoryGroceries),
		tx(t, "2024-01-10", "january rent", "100", models.CategoryRent),
		tx(t, "2024-02-12", "february utilities", "200", models.CategoryUtilities),
		tx(t, "2024-02-20", "february salary", "5000", models.CategorySalary),
	}

	trend := New(snapshot, nil).Analyze().ExpenseTrend

	require.Len(t, trend.MonthlyExpenses, 3)
	assert.True(t, trend.MonthlyExpenses["2024-01"].Equal(decimal.NewFromInt(100)))
	assert.True(t, trend.MonthlyExpenses["2024-02"].Equal(decimal.NewFromInt(200)))
	assert.True(t, trend.MonthlyExpenses["2024-03"].Equal(decimal.NewFromInt(300)))

	assert.True(t, trend.AverageExpense.Equal(decimal.NewFromInt(200)))
	assert.True(t, trend.LastMonth.Equal(decimal.NewFromInt(300)))
	assert.InDelta(t, 50.0, trend.TrendPercentage, 1e-9)
	assert.Equal(t, "Increasing", trend.TrendDirection)
}

func TestExpenseTrendDecreasing(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-10", "january rent", "300", models.CategoryRent),
		tx(t, "2024-02-12", "february rent", "100", models.CategoryRent),
	}

	trend := New(snapshot, nil).Analyze().ExpenseTrend

	assert.True(t, trend.LastMonth.Equal(decimal.NewFromInt(100)))
	assert.InDelta(t, -50.0, trend.TrendPercentage, 1e-9)
	assert.Equal(t, "Decreasing", trend.TrendDirection)
}

func TestExpenseTrendEmpty(t *testing.T) {
	trend := New(fixedSnapshot{}, nil).Analyze().ExpenseTrend

	assert.Empty(t, trend.MonthlyExpenses)
	assert.True(t, trend.AverageExpense.IsZero())
	assert.True(t, trend.LastMonth.IsZero())
	assert.Zero(t, trend.TrendPercentage)
	assert.Equal(t, "Decreasing", trend.TrendDirection)
}

func TestSpendingHabits(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-10", "groceries", "300", models.CategoryGroceries),
		tx(t, "2024-01-11", "more groceries", "100", models.CategoryGroceries),
		tx(t, "2024-01-12", "dinner", "100", models.CategoryDiningOut),
		tx(t, "2024-01-15", "salary", "5000", models.CategorySalary),
	}

	habits := New(snapshot, nil).Analyze().SpendingHabits

	require.Len(t, habits.CategoryExpenses, 2)
	assert.True(t, habits.CategoryExpenses[models.CategoryGroceries].Equal(decimal.NewFromInt(400)))
	total := decimal.Zero
	for _, sum := range habits.CategoryExpenses {
		total = total.Add(sum)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(500)))

	assert.Equal(t, string(models.CategoryGroceries), habits.MainCategory)
	assert.InDelta(t, 80.0, habits.MainCategoryPercentage, 1e-9)
}

func TestSpendingHabitsTieBreaksAlphabetically(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-10", "groceries", "250", models.CategoryGroceries),
		tx(t, "2024-01-12", "dinner", "250", models.CategoryDiningOut),
	}

	habits := New(snapshot, nil).Analyze().SpendingHabits

	// DINING_OUT sorts before GROCERIES.
	assert.Equal(t, string(models.CategoryDiningOut), habits.MainCategory)
	assert.InDelta(t, 50.0, habits.MainCategoryPercentage, 1e-9)
}

func TestSpendingHabitsNoExpenses(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-15", "salary", "5000", models.CategorySalary),
	}

	habits := New(snapshot, nil).Analyze().SpendingHabits

	assert.Empty(t, habits.CategoryExpenses)
	assert.Equal(t, NoData, habits.MainCategory)
	assert.Zero(t, habits.MainCategoryPercentage)
}

func TestBudgetAdvice(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-15", "salary", "5000", models.CategorySalary),
		tx(t, "2024-02-15", "salary", "5000", models.CategorySalary),
		tx(t, "2024-01-20", "rent", "2000", models.CategoryRent),
		tx(t, "2024-02-20", "rent", "2000", models.CategoryRent),
	}

	advice := New(snapshot, nil).Analyze().BudgetAdvice

	assert.True(t, advice.AvgMonthlyIncome.Equal(decimal.NewFromInt(5000)))
	assert.True(t, advice.AvgMonthlyExpense.Equal(decimal.NewFromInt(2000)))
	assert.InDelta(t, 60.0, advice.SavingsRate, 1e-9)
	assert.Equal(t, AdviceGoodSavings, advice.SavingsAdvice)
}

func TestBudgetAdviceLowSavingsRate(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-15", "salary", "1000", models.CategorySalary),
		tx(t, "2024-01-20", "rent", "900", models.CategoryRent),
	}

	advice := New(snapshot, nil).Analyze().BudgetAdvice

	assert.InDelta(t, 10.0, advice.SavingsRate, 1e-9)
	assert.Equal(t, AdviceIncreaseSavings, advice.SavingsAdvice)
}

func TestBudgetAdviceZeroIncome(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-20", "rent", "900", models.CategoryRent),
	}

	advice := New(snapshot, nil).Analyze().BudgetAdvice

	assert.True(t, advice.AvgMonthlyIncome.IsZero())
	assert.Zero(t, advice.SavingsRate)
	assert.Equal(t, AdviceIncreaseSavings, advice.SavingsAdvice)
}

func TestAnomalyDetectionBelowThreshold(t *testing.T) {
	// Average is 40; 100 does not exceed 3*40 = 120.
	snapshot := fixedSnapshot{
		tx(t, "2024-01-10", "groceries", "10", models.CategoryGroceries),
		tx(t, "2024-01-11", "groceries", "10", models.CategoryGroceries),
		tx(t, "2024-01-12", "big shop", "100", models.CategoryGroceries),
	}

	anomalies := New(snapshot, nil).Analyze().Anomalies

	assert.Empty(t, anomalies)
}

func TestAnomalyDetectionFlagsOutlier(t *testing.T) {
	// Average is 65 (the outlier counts toward it); 200 > 3*65 = 195.
	snapshot := fixedSnapshot{
		tx(t, "2024-01-10", "groceries", "10", models.CategoryGroceries),
		tx(t, "2024-01-11", "groceries", "10", models.CategoryGroceries),
		tx(t, "2024-01-12", "groceries", "40", models.CategoryGroceries),
		tx(t, "2024-01-13", "party supplies", "200", models.CategoryGroceries),
	}

	anomalies := New(snapshot, nil).Analyze().Anomalies

	require.Len(t, anomalies, 1)
	a := anomalies[0]
	assert.Equal(t, models.CategoryGroceries, a.Category)
	assert.True(t, a.Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "party supplies", a.Description)
	assert.Equal(t, "2024-01-13", a.Date.String())
	assert.InDelta(t, 207.69, a.DeviationPercent, 0.01)
}

func TestAnomalyDetectionIgnoresIncomeAndOtherCategories(t *testing.T) {
	snapshot := fixedSnapshot{
		tx(t, "2024-01-09", "groceries", "10", models.CategoryGroceries),
		tx(t, "2024-01-10", "groceries", "10", models.CategoryGroceries),
		tx(t, "2024-01-11", "groceries", "10", models.CategoryGroceries),
		tx(t, "2024-01-13", "big shop", "200", models.CategoryGroceries),
		tx(t, "2024-01-15", "bonus", "100000", models.CategorySalary),
		tx(t, "2024-01-20", "rent", "2000", models.CategoryRent),
	}

	anomalies := New(snapshot, nil).Analyze().Anomalies

	// Only the groceries outlier qualifies: rent is its category's sole
	// transaction (amount equals the average) and income is never flagged.
	require.Len(t, anomalies, 1)
	assert.Equal(t, models.CategoryGroceries, anomalies[0].Category)
}

func TestAnalyzeEmptyStore(t *testing.T) {
	report := New(fixedSnapshot{}, nil).Analyze()

	assert.Equal(t, NoData, report.SpendingHabits.MainCategory)
	assert.True(t, report.BudgetAdvice.AvgMonthlyIncome.IsZero())
	assert.Empty(t, report.Anomalies)
}
