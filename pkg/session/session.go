package session

import "time"

// Session is an opaque login token bound to a user with an expiry.
type Session struct {
	Token     string
	UserId    int
	ExpiresAt time.Time
}

// CookieName is the name of the browser cookie carrying the session token.
const CookieName = "fintrack_session"

func (s Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
