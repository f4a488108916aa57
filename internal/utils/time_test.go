package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(2024, 2)
	assert.Equal(t, "2024-02-01", from)
	assert.Equal(t, "2024-03-01", to)

	from, to = MonthRange(2024, 12)
	assert.Equal(t, "2024-12-01", from)
	assert.Equal(t, "2025-01-01", to)
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		year      string
		month     string
		wantYear  int
		wantMonth int
	}{
		{"both absent", "", "", 2025, 7},
		{"both given", "2020", "3", 2020, 3},
		{"year alone keeps current month", "2020", "", 2020, 7},
		{"month alone keeps current year", "", "3", 2025, 3},
		{"unparsable month resets both", "2020", "abc", 2025, 7},
		{"unparsable year resets both", "20x0", "3", 2025, 7},
		{"month out of range resets both", "2020", "13", 2025, 7},
		{"month zero resets both", "2020", "0", 2025, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := ResolvePeriod(now, tt.year, tt.month)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}
