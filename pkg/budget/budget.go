package budget

import (
	"strings"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/shopspring/decimal"
)

// Budget caps spending for one category, either for a single calendar month
// (Year and Month set) or in general (both nil).
type Budget struct {
	ID           int
	CategoryID   int
	CategoryName string
	Year         *int
	Month        *int
	Limit        decimal.Decimal
}

// WithSpending pairs a budget with the amount spent against it for a period.
type WithSpending struct {
	Budget
	Spent decimal.Decimal
}

// Exceeded reports whether spending has reached the limit. Hitting the limit
// exactly already counts.
func (w WithSpending) Exceeded() bool {
	return w.Spent.GreaterThanOrEqual(w.Limit)
}

// Form is the typed input for creating or updating a budget.
type Form struct {
	CategoryID *int
	Year       *int
	Month      *int
	Limit      string
}

// Parse validates the form and returns the budget it describes, or field-level
// messages. Year and month must be provided together or not at all.
func (f Form) Parse() (Budget, map[string]string) {
	fields := map[string]string{}
	var budget Budget

	if f.CategoryID == nil {
		fields["categoryId"] = "Category is required"
	} else {
		budget.CategoryID = *f.CategoryID
	}

	switch {
	case f.Year != nil && f.Month == nil:
		fields["month"] = "Month is required when a year is set"
	case f.Year == nil && f.Month != nil:
		fields["year"] = "Year is required when a month is set"
	case f.Year != nil:
		if !utils.ValidMonth(*f.Month) {
			fields["month"] = "Month must be between 1 and 12"
		}
		if *f.Year < 1 || *f.Year > 9999 {
			fields["year"] = "Year is out of range"
		}
		budget.Year = f.Year
		budget.Month = f.Month
	}

	limit, message := expense.ParseAmount(strings.TrimSpace(f.Limit))
	if message != "" {
		fields["limit"] = message
	}
	budget.Limit = limit

	if len(fields) == 0 {
		return budget, nil
	}
	return Budget{}, fields
}

// IsGeneral reports whether the budget applies regardless of period.
func (b Budget) IsGeneral() bool {
	return b.Year == nil && b.Month == nil
}
