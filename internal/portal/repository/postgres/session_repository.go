package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
)

// ip_address and mac_address are INET/MACADDR columns; cast to text so
// they scan into plain strings.
const sessionColumns = `s.id, s.user_email, s.ip_address::text, s.mac_address::text,
		s.mikrotik_session_id, s.session_start, s.session_end, s.bytes_in, s.bytes_out,
		s.created_at, s.updated_at`

const joinedColumns = sessionColumns + `, u.first_name, u.last_name, COALESCE(u.company, '')`

// userJoin intentionally drops sessions whose owner has been deleted:
// session rows reference users by email string, not by foreign key.
const userJoin = ` FROM user_sessions s JOIN user_registrations u ON s.user_email = u.email`

type SessionRepository struct {
	db DB
}

func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_sessions (
			id, user_email, ip_address, mac_address, mikrotik_session_id,
			session_start, bytes_in, bytes_out, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, session.ID, session.UserEmail, session.IPAddress, session.MACAddress,
		session.GatewaySessionID, session.SessionStart, session.BytesIn, session.BytesOut,
		session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// End closes an open session. The end timestamp defaults to now and the
// byte counters keep their stored values unless overridden. Ending an
// unknown or already-closed session is a no-op, which also makes a
// second close leave the original end timestamp untouched.
func (r *SessionRepository) End(ctx context.Context, id string, update domain.SessionEndUpdate) error {
	_, err := r.db.Exec(ctx, `
		UPDATE user_sessions
		SET session_end = COALESCE($1, NOW()),
			bytes_in = COALESCE($2, bytes_in),
			bytes_out = COALESCE($3, bytes_out)
		WHERE id = $4 AND session_end IS NULL
	`, update.End, update.BytesIn, update.BytesOut, id)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

func (r *SessionRepository) FindOpenByEmail(ctx context.Context, email string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
		FROM user_sessions s
		WHERE s.user_email = $1 AND s.session_end IS NULL
		ORDER BY s.session_start DESC
		LIMIT 1`

	var s domain.Session
	err := r.db.QueryRow(ctx, query, email).Scan(
		&s.ID, &s.UserEmail, &s.IPAddress, &s.MACAddress, &s.GatewaySessionID,
		&s.SessionStart, &s.SessionEnd, &s.BytesIn, &s.BytesOut, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) List(ctx context.Context, limit, offset int) ([]domain.SessionWithUser, error) {
	query := `SELECT ` + joinedColumns + userJoin + `
		ORDER BY s.session_start DESC
		LIMIT $1 OFFSET $2`

	return r.queryJoined(ctx, query, limit, offset)
}

func (r *SessionRepository) ListActive(ctx context.Context) ([]domain.SessionWithUser, error) {
	query := `SELECT ` + joinedColumns + userJoin + `
		WHERE s.session_end IS NULL
		ORDER BY s.session_start DESC`

	return r.queryJoined(ctx, query)
}

func (r *SessionRepository) ListByEmail(ctx context.Context, email string) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
		FROM user_sessions s
		WHERE s.user_email = $1
		ORDER BY s.session_start DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by email: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserEmail, &s.IPAddress, &s.MACAddress, &s.GatewaySessionID,
			&s.SessionStart, &s.SessionEnd, &s.BytesIn, &s.BytesOut, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *SessionRepository) ListByIP(ctx context.Context, ip string) ([]domain.SessionWithUser, error) {
	query := `SELECT ` + joinedColumns + userJoin + `
		WHERE s.ip_address = $1::inet
		ORDER BY s.session_start DESC`

	return r.queryJoined(ctx, query, ip)
}

func (r *SessionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.SessionWithUser, error) {
	query := `SELECT ` + joinedColumns + userJoin + `
		WHERE s.session_start BETWEEN $1 AND $2
		ORDER BY s.session_start DESC`

	return r.queryJoined(ctx, query, from, to)
}

// Stats aggregates the whole ledger in one pass. The average duration
// only considers closed sessions; open sessions have no duration yet.
func (r *SessionRepository) Stats(ctx context.Context) (*domain.SessionStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE session_end IS NULL),
			COALESCE(SUM(bytes_in), 0)::bigint,
			COALESCE(SUM(bytes_out), 0)::bigint,
			COALESCE(AVG(EXTRACT(EPOCH FROM (session_end - session_start)))
				FILTER (WHERE session_end IS NOT NULL), 0)::float8
		FROM user_sessions`

	var stats domain.SessionStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalSessions, &stats.ActiveSessions,
		&stats.TotalBytesIn, &stats.TotalBytesOut, &stats.AvgDurationSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to get session stats: %w", err)
	}

	return &stats, nil
}

func (r *SessionRepository) DailyStats(ctx context.Context, days int) ([]domain.DailyStat, error) {
	query := `
		SELECT
			DATE(session_start),
			COUNT(*),
			COUNT(*) FILTER (WHERE session_end IS NULL),
			COALESCE(SUM(bytes_in), 0)::bigint,
			COALESCE(SUM(bytes_out), 0)::bigint
		FROM user_sessions
		WHERE session_start >= NOW() - make_interval(days => $1)
		GROUP BY DATE(session_start)
		ORDER BY DATE(session_start) DESC`

	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.DailyStat
	for rows.Next() {
		var d domain.DailyStat
		if err := rows.Scan(&d.Date, &d.TotalSessions, &d.ActiveSessions,
			&d.TotalBytesIn, &d.TotalBytesOut); err != nil {
			return nil, fmt.Errorf("failed to scan daily stat: %w", err)
		}
		stats = append(stats, d)
	}

	return stats, rows.Err()
}

func (r *SessionRepository) queryJoined(ctx context.Context, query string, args ...interface{}) ([]domain.SessionWithUser, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.SessionWithUser
	for rows.Next() {
		var s domain.SessionWithUser
		if err := rows.Scan(&s.ID, &s.UserEmail, &s.IPAddress, &s.MACAddress, &s.GatewaySessionID,
			&s.SessionStart, &s.SessionEnd, &s.BytesIn, &s.BytesOut, &s.CreatedAt, &s.UpdatedAt,
			&s.FirstName, &s.LastName, &s.Company); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
