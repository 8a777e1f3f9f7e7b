package domain

import "time"

// Session is one row of the session directory as seen by the dashboard.
type Session struct {
	ID           string
	UserID       string
	CreatedAt    time.Time
	LastActivity time.Time
	Active       bool
}
