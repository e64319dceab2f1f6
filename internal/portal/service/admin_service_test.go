package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
	"github.com/MannyGDy/Captive-Portal/internal/mocks"
	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
	"github.com/MannyGDy/Captive-Portal/internal/portal/dto"
	"github.com/MannyGDy/Captive-Portal/internal/portal/service"
	"github.com/MannyGDy/Captive-Portal/pkg/logger"
)

type adminServiceMocks struct {
	admins   *mocks.MockAdminRepository
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionRepository
	settings *mocks.MockSettingsRepository
	tokens   *mocks.MockTokenGenerator
}

func newAdminService(ctrl *gomock.Controller) (*service.AdminService, adminServiceMocks) {
	m := adminServiceMocks{
		admins:   mocks.NewMockAdminRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		sessions: mocks.NewMockSessionRepository(ctrl),
		settings: mocks.NewMockSettingsRepository(ctrl),
		tokens:   mocks.NewMockTokenGenerator(ctrl),
	}
	s := service.NewAdminService(m.admins, m.users, m.sessions, m.settings, m.tokens, logger.NewNop())
	return s, m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAdminService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	admin := &domain.Admin{
		ID:           "admin-1",
		Username:     "portaladmin",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
	}

	m.admins.EXPECT().GetByUsername(gomock.Any(), admin.Username).Return(admin, nil)
	m.admins.EXPECT().UpdateLastLogin(gomock.Any(), admin.ID).Return(nil)
	m.tokens.EXPECT().GenerateAdminToken(admin.ID, admin.Username, admin.Role).Return("admin-token", nil)

	result, err := s.Login(context.Background(), dto.AdminLoginInput{Username: admin.Username, Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "admin-token", result.Token)
	assert.Equal(t, admin.Username, result.Admin.Username)
	assert.NotNil(t, result.Admin.LastLogin)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	admin := &domain.Admin{
		ID:           "admin-1",
		Username:     "portaladmin",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		IsActive:     true,
	}

	m.admins.EXPECT().GetByUsername(gomock.Any(), admin.Username).Return(admin, nil)

	result, err := s.Login(context.Background(), dto.AdminLoginInput{Username: admin.Username, Password: "wrong"})

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAdminService_Login_InactiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	admin := &domain.Admin{
		ID:           "admin-1",
		Username:     "portaladmin",
		PasswordHash: hashPassword(t, "s3cret-pass"),
		IsActive:     false,
	}

	m.admins.EXPECT().GetByUsername(gomock.Any(), admin.Username).Return(admin, nil)

	result, err := s.Login(context.Background(), dto.AdminLoginInput{Username: admin.Username, Password: "s3cret-pass"})

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAdminService_Login_UnknownUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.admins.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	result, err := s.Login(context.Background(), dto.AdminLoginInput{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestAdminService_EnsureDefaultAdmin_CreatesWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.admins.EXPECT().GetByUsername(gomock.Any(), "portaladmin").Return(nil, nil)

	var created *domain.Admin
	m.admins.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Admin) error {
			created = a
			return nil
		})

	err := s.EnsureDefaultAdmin(context.Background(), "portaladmin", "bootstrap-pass", "Admin@Example.com")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.RoleSuperAdmin, created.Role)
	assert.Equal(t, "admin@example.com", created.Email)
	assert.True(t, created.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("bootstrap-pass")))
}

func TestAdminService_EnsureDefaultAdmin_SkipsWhenPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.admins.EXPECT().GetByUsername(gomock.Any(), "portaladmin").
		Return(&domain.Admin{ID: "admin-1", Username: "portaladmin"}, nil)

	err := s.EnsureDefaultAdmin(context.Background(), "portaladmin", "bootstrap-pass", "admin@example.com")

	assert.NoError(t, err)
}

func TestAdminService_EnsureDefaultAdmin_SkipsWhenUnconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newAdminService(ctrl)

	err := s.EnsureDefaultAdmin(context.Background(), "", "", "")

	assert.NoError(t, err)
}

func TestAdminService_CreateAdmin_DefaultsRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	var created *domain.Admin
	m.admins.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Admin) error {
			created = a
			return nil
		})

	out, err := s.CreateAdmin(context.Background(), dto.CreateAdminInput{
		Username: " frontdesk ",
		Password: "desk-pass-1",
		Email:    "Desk@Example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "frontdesk", created.Username)
	assert.Equal(t, "desk@example.com", created.Email)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.Equal(t, domain.RoleAdmin, out.Role)
}

func TestAdminService_CreateAdmin_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.admins.EXPECT().Create(gomock.Any(), gomock.Any()).Return(autherror.ErrUsernameTaken)

	out, err := s.CreateAdmin(context.Background(), dto.CreateAdminInput{
		Username: "frontdesk",
		Password: "desk-pass-1",
		Email:    "desk@example.com",
	})

	assert.ErrorIs(t, err, autherror.ErrUsernameTaken)
	assert.Nil(t, out)
}

func TestAdminService_ListUsers_SearchFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	users := []domain.User{
		{ID: "u1", FirstName: "Adaeze", LastName: "Okafor", Email: "adaeze@acme.ng", Company: "ACME Corp", PhoneNumber: "08011111111"},
		{ID: "u2", FirstName: "Bola", LastName: "Adeyemi", Email: "bola@other.ng", Company: "Other Ltd", PhoneNumber: "09022222222"},
		{ID: "u3", FirstName: "Chidi", LastName: "Eze", Email: "chidi@mail.ng", Company: "Acme Subsidiary", PhoneNumber: "07033333333"},
	}

	m.users.EXPECT().List(gomock.Any()).Return(users, nil)

	list, err := s.ListUsers(context.Background(), 1, 50, "acme")

	require.NoError(t, err)
	require.Len(t, list.Users, 2)
	assert.Equal(t, "u1", list.Users[0].ID)
	assert.Equal(t, "u3", list.Users[1].ID)
	assert.Equal(t, 2, list.Pagination.Total)
	assert.Equal(t, 1, list.Pagination.Pages)
}

func TestAdminService_ListUsers_SearchByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	users := []domain.User{
		{ID: "u1", FirstName: "Adaeze", Email: "adaeze@acme.ng", PhoneNumber: "08011111111"},
		{ID: "u2", FirstName: "Bola", Email: "bola@other.ng", PhoneNumber: "09022222222"},
	}

	m.users.EXPECT().List(gomock.Any()).Return(users, nil)

	list, err := s.ListUsers(context.Background(), 1, 50, "0902")

	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "u2", list.Users[0].ID)
}

func TestAdminService_ListUsers_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	users := make([]domain.User, 5)
	for i := range users {
		users[i] = domain.User{ID: string(rune('a' + i))}
	}

	m.users.EXPECT().List(gomock.Any()).Return(users, nil)

	list, err := s.ListUsers(context.Background(), 2, 2, "")

	require.NoError(t, err)
	require.Len(t, list.Users, 2)
	assert.Equal(t, "c", list.Users[0].ID)
	assert.Equal(t, "d", list.Users[1].ID)
	assert.Equal(t, 5, list.Pagination.Total)
	assert.Equal(t, 3, list.Pagination.Pages)
}

func TestAdminService_ListUsers_PageBeyondEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.users.EXPECT().List(gomock.Any()).Return([]domain.User{{ID: "u1"}}, nil)

	list, err := s.ListUsers(context.Background(), 9, 50, "")

	require.NoError(t, err)
	assert.Empty(t, list.Users)
	assert.Equal(t, 1, list.Pagination.Total)
}

func TestAdminService_GetUser_WithSessionHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	user := &domain.User{ID: "u1", Email: "adaeze@example.com"}
	history := []domain.Session{
		{ID: "sess-2", UserEmail: user.Email},
		{ID: "sess-1", UserEmail: user.Email},
	}

	m.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	m.sessions.EXPECT().ListByEmail(gomock.Any(), user.Email).Return(history, nil)

	detail, err := s.GetUser(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, detail.User.ID)
	require.Len(t, detail.Sessions, 2)
	assert.Equal(t, "sess-2", detail.Sessions[0].ID)
}

func TestAdminService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.users.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	detail, err := s.GetUser(context.Background(), "missing")

	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	assert.Nil(t, detail)
}

func TestAdminService_UpdateAdminPassword_Hashes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.admins.EXPECT().UpdatePassword(gomock.Any(), "admin-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-pass-123")))
			return nil
		})

	err := s.UpdateAdminPassword(context.Background(), "admin-1", "new-pass-123")

	assert.NoError(t, err)
}

func TestAdminService_Stats_CombinesUserAndSessionStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.users.EXPECT().Stats(gomock.Any()).Return(&domain.UserStats{
		TotalUsers:     12,
		ActiveUsers:    10,
		UsersWithLogin: 8,
		RecentLogins:   3,
	}, nil)
	m.sessions.EXPECT().Stats(gomock.Any()).Return(&domain.SessionStats{
		TotalSessions:      40,
		ActiveSessions:     4,
		TotalBytesIn:       1024,
		TotalBytesOut:      2048,
		AvgDurationSeconds: 1800,
	}, nil)

	stats, err := s.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.UserStats.TotalUsers)
	assert.Equal(t, int64(3), stats.UserStats.RecentLogins)
	assert.Equal(t, int64(40), stats.SessionStats.TotalSessions)
	assert.InDelta(t, 1800, stats.SessionStats.AvgDurationSeconds, 0.001)
}

func TestAdminService_UpdateSetting_UnknownKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newAdminService(ctrl)

	m.settings.EXPECT().Set(gomock.Any(), "no_such_key", "1").Return(autherror.ErrSettingNotFound)

	err := s.UpdateSetting(context.Background(), "no_such_key", "1")

	assert.ErrorIs(t, err, autherror.ErrSettingNotFound)
}
