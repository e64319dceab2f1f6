package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
	"github.com/MannyGDy/Captive-Portal/internal/portal/dto"
	"github.com/MannyGDy/Captive-Portal/pkg/logger"
	"github.com/MannyGDy/Captive-Portal/pkg/phone"
)

// UserService implements guest registration, login, profile and logout.
type UserService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	tokens   TokenGenerator
	log      logger.Logger
}

func NewUserService(users domain.UserRepository, sessions domain.SessionRepository,
	tokens TokenGenerator, log logger.Logger) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		log:      log,
	}
}

// Register creates the guest account and issues a token. No session is
// opened here; sessions only start at login. Duplicate email or phone
// surfaces from the schema's unique constraints.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResult, error) {
	if !phone.IsValid(input.PhoneNumber) {
		return nil, autherror.ErrInvalidPhoneFormat
	}

	now := time.Now()
	user := &domain.User{
		ID:               uuid.NewString(),
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Company:          input.Company,
		IsActive:         true,
		RegistrationDate: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateUserToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", logger.String("user_id", user.ID))

	return &dto.AuthResult{Token: token, User: dto.NewUserOutput(user)}, nil
}

// Login authenticates by email plus normalized phone number and opens a
// session. A failed session insert does not fail the login; access has
// already been granted, the ledger entry is best effort.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResult, error) {
	user, err := s.users.GetActiveByCredentials(ctx, input.Email, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.log.Warn("failed to update last login", logger.String("user_id", user.ID), logger.Error(err))
	} else {
		user.LastLogin = &now
	}

	session := &domain.Session{
		ID:               uuid.NewString(),
		UserEmail:        user.Email,
		IPAddress:        optional(input.IPAddress),
		MACAddress:       optional(input.MACAddress),
		GatewaySessionID: optional(input.GatewaySessionID),
		SessionStart:     now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Warn("failed to record session", logger.String("user_id", user.ID), logger.Error(err))
	}

	token, err := s.tokens.GenerateUserToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResult{Token: token, User: dto.NewUserOutput(user)}, nil
}

// Profile returns the caller's identity looked up by the email claim.
// The account may have been deleted after the token was issued.
func (s *UserService) Profile(ctx context.Context, email string) (*dto.UserOutput, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	out := dto.NewUserOutput(user)
	return &out, nil
}

// Logout closes the caller's most recent open session. It is a no-op
// when none is open, so repeated logouts succeed without side effects.
func (s *UserService) Logout(ctx context.Context, email string) error {
	open, err := s.sessions.FindOpenByEmail(ctx, email)
	if err != nil {
		return err
	}
	if open == nil {
		return nil
	}

	return s.sessions.End(ctx, open.ID, domain.SessionEndUpdate{})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
