package service

import (
	"context"

	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
	"github.com/MannyGDy/Captive-Portal/internal/portal/dto"
)

const defaultDailyStatsWindow = 7

// SessionService exposes the admin views over the session ledger.
type SessionService struct {
	sessions domain.SessionRepository
}

func NewSessionService(sessions domain.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// List applies at most one filter. Filtered listings are joined with
// the owning user's identity fields, except the per-user history which
// returns raw ledger rows so deleted users' sessions stay visible there.
func (s *SessionService) List(ctx context.Context, page, limit int, filter dto.SessionFilter) ([]dto.SessionOutput, error) {
	switch {
	case filter.Email != "":
		sessions, err := s.sessions.ListByEmail(ctx, filter.Email)
		if err != nil {
			return nil, err
		}
		out := make([]dto.SessionOutput, 0, len(sessions))
		for i := range sessions {
			out = append(out, dto.NewSessionOutput(&sessions[i]))
		}
		return out, nil

	case filter.IP != "":
		sessions, err := s.sessions.ListByIP(ctx, filter.IP)
		if err != nil {
			return nil, err
		}
		return joinedOutputs(sessions), nil

	case !filter.From.IsZero() && !filter.To.IsZero():
		sessions, err := s.sessions.ListByDateRange(ctx, filter.From, filter.To)
		if err != nil {
			return nil, err
		}
		return joinedOutputs(sessions), nil

	default:
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 50
		}
		sessions, err := s.sessions.List(ctx, limit, (page-1)*limit)
		if err != nil {
			return nil, err
		}
		return joinedOutputs(sessions), nil
	}
}

func (s *SessionService) Active(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := s.sessions.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return joinedOutputs(sessions), nil
}

func (s *SessionService) DailyStats(ctx context.Context, days int) ([]dto.DailyStatOutput, error) {
	if days < 1 {
		days = defaultDailyStatsWindow
	}

	stats, err := s.sessions.DailyStats(ctx, days)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DailyStatOutput, 0, len(stats))
	for _, d := range stats {
		out = append(out, dto.NewDailyStatOutput(d))
	}

	return out, nil
}

func joinedOutputs(sessions []domain.SessionWithUser) []dto.SessionOutput {
	out := make([]dto.SessionOutput, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.NewSessionWithUserOutput(&sessions[i]))
	}
	return out
}
