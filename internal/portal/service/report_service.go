package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

// reportSessionLimit caps the sessions report; matches the listing cap
// used by the admin console export.
const reportSessionLimit = 10000

// ReportService renders the admin CSV exports.
type ReportService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

func NewReportService(users domain.UserRepository, sessions domain.SessionRepository) *ReportService {
	return &ReportService{users: users, sessions: sessions}
}

// UsersCSV returns the users report and its dated download filename.
func (s *ReportService) UsersCSV(ctx context.Context) ([]byte, string, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "First Name", "Last Name", "Email", "Phone Number",
		"Company", "Registration Date", "Last Login", "Active"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, u := range users {
		record := []string{
			u.ID,
			u.FirstName,
			u.LastName,
			u.Email,
			u.PhoneNumber,
			u.Company,
			u.RegistrationDate.Format(time.RFC3339),
			formatTime(u.LastLogin),
			strconv.FormatBool(u.IsActive),
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("users_report_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// SessionsCSV returns the sessions report and its dated download
// filename. Rows carry the owner's current identity fields via the
// email join, so sessions of deleted users are absent.
func (s *ReportService) SessionsCSV(ctx context.Context) ([]byte, string, error) {
	sessions, err := s.sessions.List(ctx, reportSessionLimit, 0)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Session ID", "User Email", "First Name", "Last Name", "Company",
		"IP Address", "MAC Address", "Session Start", "Session End", "Bytes In", "Bytes Out"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, sess := range sessions {
		record := []string{
			sess.ID,
			sess.UserEmail,
			sess.FirstName,
			sess.LastName,
			sess.Company,
			derefString(sess.IPAddress),
			derefString(sess.MACAddress),
			sess.SessionStart.Format(time.RFC3339),
			formatTime(sess.SessionEnd),
			strconv.FormatInt(sess.BytesIn, 10),
			strconv.FormatInt(sess.BytesOut, 10),
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("sessions_report_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
