package dto

import (
	"time"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

type UserStatsOutput struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveUsers    int64 `json:"active_users"`
	UsersWithLogin int64 `json:"users_with_login"`
	RecentLogins   int64 `json:"recent_logins"`
}

type SessionStatsOutput struct {
	TotalSessions      int64   `json:"total_sessions"`
	ActiveSessions     int64   `json:"active_sessions"`
	TotalBytesIn       int64   `json:"total_bytes_in"`
	TotalBytesOut      int64   `json:"total_bytes_out"`
	AvgDurationSeconds float64 `json:"avg_duration"`
}

// SystemStats is the combined admin dashboard payload.
type SystemStats struct {
	UserStats    UserStatsOutput    `json:"userStats"`
	SessionStats SessionStatsOutput `json:"sessionStats"`
}

func NewSystemStats(u *domain.UserStats, s *domain.SessionStats) SystemStats {
	return SystemStats{
		UserStats: UserStatsOutput{
			TotalUsers:     u.TotalUsers,
			ActiveUsers:    u.ActiveUsers,
			UsersWithLogin: u.UsersWithLogin,
			RecentLogins:   u.RecentLogins,
		},
		SessionStats: SessionStatsOutput{
			TotalSessions:      s.TotalSessions,
			ActiveSessions:     s.ActiveSessions,
			TotalBytesIn:       s.TotalBytesIn,
			TotalBytesOut:      s.TotalBytesOut,
			AvgDurationSeconds: s.AvgDurationSeconds,
		},
	}
}

type DailyStatOutput struct {
	Date           time.Time `json:"date"`
	TotalSessions  int64     `json:"total_sessions"`
	ActiveSessions int64     `json:"active_sessions"`
	TotalBytesIn   int64     `json:"total_bytes_in"`
	TotalBytesOut  int64     `json:"total_bytes_out"`
}

func NewDailyStatOutput(d domain.DailyStat) DailyStatOutput {
	return DailyStatOutput{
		Date:           d.Date,
		TotalSessions:  d.TotalSessions,
		ActiveSessions: d.ActiveSessions,
		TotalBytesIn:   d.TotalBytesIn,
		TotalBytesOut:  d.TotalBytesOut,
	}
}
