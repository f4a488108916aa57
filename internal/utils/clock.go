package utils

import "time"

// Clock abstracts "now" so period fallbacks and session expiries are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock, used everywhere outside tests.
type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed time, adjustable mid-test with SetNow.
type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
