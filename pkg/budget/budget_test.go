package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFormParse(t *testing.T) {
	categoryId := 7

	t.Run("general budget", func(t *testing.T) {
		budget, fields := Form{CategoryID: &categoryId, Limit: "300.00"}.Parse()

		require.Nil(t, fields)
		assert.Equal(t, 7, budget.CategoryID)
		assert.Nil(t, budget.Year)
		assert.Nil(t, budget.Month)
		assert.Equal(t, "300", budget.Limit.String())
	})

	t.Run("period budget", func(t *testing.T) {
		budget, fields := Form{CategoryID: &categoryId, Year: intPtr(2025), Month: intPtr(3), Limit: "300.00"}.Parse()

		require.Nil(t, fields)
		require.NotNil(t, budget.Year)
		require.NotNil(t, budget.Month)
		assert.Equal(t, 2025, *budget.Year)
		assert.Equal(t, 3, *budget.Month)
	})

	tests := []struct {
		name  string
		form  Form
		field string
	}{
		{"missing category", Form{Limit: "300.00"}, "categoryId"},
		{"year without month", Form{CategoryID: &categoryId, Year: intPtr(2025), Limit: "300.00"}, "month"},
		{"month without year", Form{CategoryID: &categoryId, Month: intPtr(3), Limit: "300.00"}, "year"},
		{"month out of range", Form{CategoryID: &categoryId, Year: intPtr(2025), Month: intPtr(13), Limit: "300.00"}, "month"},
		{"zero limit", Form{CategoryID: &categoryId, Limit: "0"}, "limit"},
		{"negative limit", Form{CategoryID: &categoryId, Limit: "-10"}, "limit"},
		{"malformed limit", Form{CategoryID: &categoryId, Limit: "a lot"}, "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fields := tt.form.Parse()

			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.field)
		})
	}
}
