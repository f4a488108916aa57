package utils

import (
	"strconv"
	"time"
)

// DateFormat is the day-precision format used for date columns.
const DateFormat = "2006-01-02"

// ParseStoredTime accepts both timestamp formats the store produces: RFC3339 for
// rows written by the application and SQLite's datetime('now') for defaulted columns.
func ParseStoredTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

// MonthRange returns the calendar month as a half-open [from, to) pair of date
// strings, suitable for range comparison against date columns.
func MonthRange(year int, month int) (string, string) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from.Format(DateFormat), from.AddDate(0, 1, 0).Format(DateFormat)
}

// ValidMonth reports whether m is a calendar month number.
func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

// ResolvePeriod turns raw month/year query values into a concrete period. An
// absent value defaults to now's component on its own, so "?year=2020" reads as
// 2020 with the current month. A value that is present but unparsable, or a
// month outside 1..12, falls back to now's month AND year: a half-valid pair
// would select a period the caller never asked for.
func ResolvePeriod(now time.Time, yearRaw string, monthRaw string) (int, int) {
	year := now.Year()
	month := int(now.Month())

	resolvedYear, resolvedMonth := year, month
	if yearRaw != "" {
		parsed, err := strconv.Atoi(yearRaw)
		if err != nil {
			return year, month
		}
		resolvedYear = parsed
	}
	if monthRaw != "" {
		parsed, err := strconv.Atoi(monthRaw)
		if err != nil || !ValidMonth(parsed) {
			return year, month
		}
		resolvedMonth = parsed
	}
	return resolvedYear, resolvedMonth
}
