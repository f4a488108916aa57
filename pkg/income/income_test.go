package income

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormParse(t *testing.T) {
	valid := Form{Title: "Salary", Amount: "2500.00", Date: "2025-03-01"}

	t.Run("valid form parses", func(t *testing.T) {
		income, fields := valid.Parse()

		require.Nil(t, fields)
		assert.Equal(t, "Salary", income.Title)
		assert.Equal(t, "2500", income.Amount.String())
		assert.Equal(t, 2025, income.Date.Year())
	})

	t.Run("trims title and notes", func(t *testing.T) {
		form := valid
		form.Title = "  Salary  "
		form.Notes = "  march payout  "

		income, fields := form.Parse()

		require.Nil(t, fields)
		assert.Equal(t, "Salary", income.Title)
		assert.Equal(t, "march payout", income.Notes)
	})

	tests := []struct {
		name   string
		mutate func(*Form)
		field  string
	}{
		{"missing title", func(f *Form) { f.Title = "  " }, "title"},
		{"title too long", func(f *Form) { f.Title = strings.Repeat("x", 201) }, "title"},
		{"zero amount", func(f *Form) { f.Amount = "0" }, "amount"},
		{"negative amount", func(f *Form) { f.Amount = "-5" }, "amount"},
		{"too many decimals", func(f *Form) { f.Amount = "10.123" }, "amount"},
		{"not a number", func(f *Form) { f.Amount = "lots" }, "amount"},
		{"bad date", func(f *Form) { f.Date = "03/01/2025" }, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			_, fields := form.Parse()

			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.field)
		})
	}
}
