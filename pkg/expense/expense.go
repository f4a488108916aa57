package expense

import (
	"strings"
	"time"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID     int
	Title  string
	Amount decimal.Decimal
	Date   time.Time
	// CategoryID is nil for uncategorized expenses, including those whose
	// category was deleted after the fact.
	CategoryID   *int
	CategoryName string
	Notes        string
	CreatedAt    time.Time
}

const (
	maxTitleLength  = 200
	maxAmountDigits = 12
)

// Form is the typed input for creating or updating an expense. Amount and date
// arrive as strings, the way the form submits them.
type Form struct {
	Title      string
	Amount     string
	Date       string
	CategoryID *int
	Notes      string
}

// Parse validates the form and returns the expense it describes, or field-level
// messages when the input is rejected.
func (f Form) Parse() (Expense, map[string]string) {
	fields := map[string]string{}
	var expense Expense

	expense.Title = strings.TrimSpace(f.Title)
	if expense.Title == "" {
		fields["title"] = "Title is required"
	} else if len(expense.Title) > maxTitleLength {
		fields["title"] = "Title must be at most 200 characters"
	}

	amount, message := ParseAmount(f.Amount)
	if message != "" {
		fields["amount"] = message
	}
	expense.Amount = amount

	date, err := time.Parse(utils.DateFormat, strings.TrimSpace(f.Date))
	if err != nil {
		fields["date"] = "Date must be in YYYY-MM-DD format"
	}
	expense.Date = date

	expense.CategoryID = f.CategoryID
	expense.Notes = strings.TrimSpace(f.Notes)

	if len(fields) == 0 {
		return expense, nil
	}
	return Expense{}, fields
}

// ParseAmount parses a monetary amount: a positive decimal with at most two
// fractional digits and at most twelve digits in total. Returns the reason for
// rejection as a message, empty when the amount is acceptable.
func ParseAmount(raw string) (decimal.Decimal, string) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, "Amount must be a decimal number"
	}
	if !amount.IsPositive() {
		return decimal.Zero, "Amount must be greater than zero"
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, "Amount can have at most two decimal places"
	}
	if len(amount.Coefficient().String()) > maxAmountDigits {
		return decimal.Zero, "Amount has too many digits"
	}
	return amount, ""
}
