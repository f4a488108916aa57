package income

import (
	"strings"
	"time"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/shopspring/decimal"
)

type Income struct {
	ID        int
	Title     string
	Amount    decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

const maxTitleLength = 200

// Form is the typed input for creating or updating an income entry.
type Form struct {
	Title  string
	Amount string
	Date   string
	Notes  string
}

// Parse validates the form and returns the income it describes, or field-level
// messages when the input is rejected. The amount contract is the same as for
// expenses.
func (f Form) Parse() (Income, map[string]string) {
	fields := map[string]string{}
	var income Income

	income.Title = strings.TrimSpace(f.Title)
	if income.Title == "" {
		fields["title"] = "Title is required"
	} else if len(income.Title) > maxTitleLength {
		fields["title"] = "Title must be at most 200 characters"
	}

	amount, message := expense.ParseAmount(f.Amount)
	if message != "" {
		fields["amount"] = message
	}
	income.Amount = amount

	date, err := time.Parse(utils.DateFormat, strings.TrimSpace(f.Date))
	if err != nil {
		fields["date"] = "Date must be in YYYY-MM-DD format"
	}
	income.Date = date

	income.Notes = strings.TrimSpace(f.Notes)

	if len(fields) == 0 {
		return income, nil
	}
	return Income{}, fields
}
