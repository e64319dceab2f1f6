package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
	"github.com/MannyGDy/Captive-Portal/internal/portal/dto"
	"github.com/MannyGDy/Captive-Portal/pkg/logger"
)

// AdminService handles staff authentication, admin account CRUD and the
// admin views over users and statistics.
type AdminService struct {
	admins   domain.AdminRepository
	users    domain.UserRepository
	sessions domain.SessionRepository
	settings domain.SettingsRepository
	tokens   TokenGenerator
	log      logger.Logger
}

func NewAdminService(admins domain.AdminRepository, users domain.UserRepository,
	sessions domain.SessionRepository, settings domain.SettingsRepository,
	tokens TokenGenerator, log logger.Logger) *AdminService {
	return &AdminService{
		admins:   admins,
		users:    users,
		sessions: sessions,
		settings: settings,
		tokens:   tokens,
		log:      log,
	}
}

// Login verifies username and password. The same vague error covers a
// missing account, an inactive account and a wrong password.
func (s *AdminService) Login(ctx context.Context, input dto.AdminLoginInput) (*dto.AdminAuthResult, error) {
	admin, err := s.admins.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.log.Warn("failed to update admin last login", logger.String("admin_id", admin.ID), logger.Error(err))
	} else {
		admin.LastLogin = &now
	}

	token, err := s.tokens.GenerateAdminToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AdminAuthResult{Token: token, Admin: dto.NewAdminOutput(admin)}, nil
}

// EnsureDefaultAdmin creates the bootstrap super admin when configured
// and not present yet. Called once at startup.
func (s *AdminService) EnsureDefaultAdmin(ctx context.Context, username, password, email string) error {
	if username == "" || password == "" {
		return nil
	}

	existing, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}

	s.log.Info("default admin created", logger.String("username", username))

	return nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, input dto.CreateAdminInput) (*dto.AdminOutput, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	now := time.Now()
	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	out := dto.NewAdminOutput(admin)
	return &out, nil
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]dto.AdminOutput, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminOutput, 0, len(admins))
	for i := range admins {
		out = append(out, dto.NewAdminOutput(&admins[i]))
	}

	return out, nil
}

func (s *AdminService) UpdateAdmin(ctx context.Context, id string, input dto.UpdateAdminInput) error {
	return s.admins.Update(ctx, id, input.ToDomain())
}

func (s *AdminService) UpdateAdminPassword(ctx context.Context, id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.admins.UpdatePassword(ctx, id, string(hash))
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id string) error {
	return s.admins.Delete(ctx, id)
}

// ListUsers loads every user, filters in memory with a case-insensitive
// substring match over name, email, company and phone, then paginates.
func (s *AdminService) ListUsers(ctx context.Context, page, limit int, search string) (*dto.UserList, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := users[:0]
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.FirstName), needle) ||
				strings.Contains(strings.ToLower(u.LastName), needle) ||
				strings.Contains(strings.ToLower(u.Email), needle) ||
				strings.Contains(strings.ToLower(u.Company), needle) ||
				strings.Contains(u.PhoneNumber, search) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	total := len(users)
	pages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]dto.UserOutput, 0, end-offset)
	for i := offset; i < end; i++ {
		out = append(out, dto.NewUserOutput(&users[i]))
	}

	return &dto.UserList{
		Users: out,
		Pagination: dto.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// GetUser returns one user with their full session history, including
// sessions older than the joined listings show.
func (s *AdminService) GetUser(ctx context.Context, id string) (*dto.UserDetail, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	sessions, err := s.sessions.ListByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	history := make([]dto.SessionOutput, 0, len(sessions))
	for i := range sessions {
		history = append(history, dto.NewSessionOutput(&sessions[i]))
	}

	return &dto.UserDetail{User: dto.NewUserOutput(user), Sessions: history}, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, input dto.UpdateUserInput) error {
	return s.users.Update(ctx, id, input.ToDomain())
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *AdminService) ListSettings(ctx context.Context) ([]dto.SettingOutput, error) {
	settings, err := s.settings.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SettingOutput, 0, len(settings))
	for i := range settings {
		out = append(out, dto.NewSettingOutput(&settings[i]))
	}

	return out, nil
}

func (s *AdminService) UpdateSetting(ctx context.Context, key, value string) error {
	return s.settings.Set(ctx, key, value)
}

func (s *AdminService) Stats(ctx context.Context) (*dto.SystemStats, error) {
	userStats, err := s.users.Stats(ctx)
	if err != nil {
		return nil, err
	}

	sessionStats, err := s.sessions.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats := dto.NewSystemStats(userStats, sessionStats)
	return &stats, nil
}
