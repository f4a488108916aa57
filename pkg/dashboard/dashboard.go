package dashboard

import (
	"github.com/fintrack/fintrack/pkg/budget"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/income"
	"github.com/shopspring/decimal"
)

// Period is the calendar month a snapshot was computed for.
type Period struct {
	Year  int
	Month int
}

// CategoryTotal is one slice of the per-category expense breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Snapshot is everything the dashboard shows for one user and month.
type Snapshot struct {
	Period         Period
	TotalExpenses  decimal.Decimal
	TotalIncome    decimal.Decimal
	Balance        decimal.Decimal
	Breakdown      []CategoryTotal
	Budgets        []budget.WithSpending
	Alerts         []budget.WithSpending
	RecentExpenses []expense.Expense
	RecentIncomes  []income.Income
	Categories     []category.Category
}
