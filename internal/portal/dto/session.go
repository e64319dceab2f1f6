package dto

import (
	"time"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

type SessionOutput struct {
	ID               string     `json:"id"`
	UserEmail        string     `json:"user_email"`
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	Company          string     `json:"company,omitempty"`
	IPAddress        *string    `json:"ip_address"`
	MACAddress       *string    `json:"mac_address"`
	GatewaySessionID *string    `json:"mikrotik_session_id"`
	SessionStart     time.Time  `json:"session_start"`
	SessionEnd       *time.Time `json:"session_end"`
	BytesIn          int64      `json:"bytes_in"`
	BytesOut         int64      `json:"bytes_out"`
}

func NewSessionOutput(s *domain.Session) SessionOutput {
	return SessionOutput{
		ID:               s.ID,
		UserEmail:        s.UserEmail,
		IPAddress:        s.IPAddress,
		MACAddress:       s.MACAddress,
		GatewaySessionID: s.GatewaySessionID,
		SessionStart:     s.SessionStart,
		SessionEnd:       s.SessionEnd,
		BytesIn:          s.BytesIn,
		BytesOut:         s.BytesOut,
	}
}

func NewSessionWithUserOutput(s *domain.SessionWithUser) SessionOutput {
	out := NewSessionOutput(&s.Session)
	out.FirstName = s.FirstName
	out.LastName = s.LastName
	out.Company = s.Company
	return out
}

type SessionList struct {
	Sessions []SessionOutput `json:"sessions"`
}

// SessionFilter narrows the admin session listing. Zero values mean
// "no filter"; Email, IP and the date range are mutually exclusive in
// practice but combining them is harmless.
type SessionFilter struct {
	Email string
	IP    string
	From  time.Time
	To    time.Time
}
