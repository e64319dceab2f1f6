package domain

import "time"

// Session is one guest's accounted period of network access. A nil
// SessionEnd means the session is still open. Sessions reference their
// owner by email string; there is no foreign key, so a deleted user
// leaves orphaned rows behind.
type Session struct {
	ID                string
	UserEmail         string
	IPAddress         *string
	MACAddress        *string
	GatewaySessionID  *string
	SessionStart      time.Time
	SessionEnd        *time.Time
	BytesIn           int64
	BytesOut          int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SessionWithUser is a session joined with the owner's current identity
// fields for display. Sessions whose owner has been deleted do not
// appear in joined listings.
type SessionWithUser struct {
	Session
	FirstName string
	LastName  string
	Company   string
}

// SessionEndUpdate carries the optional fields of a close operation. A nil
// End defaults to the current time; nil byte counters keep the stored
// values.
type SessionEndUpdate struct {
	End      *time.Time
	BytesIn  *int64
	BytesOut *int64
}

// SessionStats aggregates the ledger. AvgDurationSeconds covers closed
// sessions only; open sessions have no duration.
type SessionStats struct {
	TotalSessions      int64
	ActiveSessions     int64
	TotalBytesIn       int64
	TotalBytesOut      int64
	AvgDurationSeconds float64
}

// DailyStat is one calendar day of session activity.
type DailyStat struct {
	Date           time.Time
	TotalSessions  int64
	ActiveSessions int64
	TotalBytesIn   int64
	TotalBytesOut  int64
}
