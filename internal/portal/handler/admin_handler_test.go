package handler_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
	"github.com/MannyGDy/Captive-Portal/internal/portal/domain"
	"github.com/MannyGDy/Captive-Portal/internal/portal/service"
)

func adminToken(t *testing.T, tokens *service.TokenService) string {
	t.Helper()
	token, err := tokens.GenerateAdminToken("admin-1", "portaladmin", domain.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestAdminLoginEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, _ := newTestApp(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &domain.Admin{
		ID:           "admin-1",
		Username:     "portaladmin",
		PasswordHash: string(hash),
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
	}

	t.Run("success", func(t *testing.T) {
		m.admins.EXPECT().GetByUsername(gomock.Any(), admin.Username).Return(admin, nil)
		m.admins.EXPECT().UpdateLastLogin(gomock.Any(), admin.ID).Return(nil)

		req := jsonRequest("POST", "/api/admin/login", fiber.Map{
			"username": "portaladmin",
			"password": "s3cret-pass",
		})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Admin login successful", body["message"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		m.admins.EXPECT().GetByUsername(gomock.Any(), admin.Username).Return(admin, nil)

		req := jsonRequest("POST", "/api/admin/login", fiber.Map{
			"username": "portaladmin",
			"password": "wrong",
		})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := jsonRequest("POST", "/api/admin/login", fiber.Map{"username": ""})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAdminRoutes_RequireAdminToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, tokens := newTestApp(ctrl)

	t.Run("no token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/users", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Admin token required", body["message"])
	})

	t.Run("user token rejected", func(t *testing.T) {
		token, err := tokens.GenerateUserToken("user-1", "adaeze@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid or expired admin token", body["message"])
	})
}

func TestAdminListUsersEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, tokens := newTestApp(ctrl)
	token := adminToken(t, tokens)

	users := []domain.User{
		{ID: "u1", FirstName: "Adaeze", Email: "adaeze@acme.ng", Company: "Acme Corp"},
		{ID: "u2", FirstName: "Bola", Email: "bola@other.ng", Company: "Other Ltd"},
	}
	m.users.EXPECT().List(gomock.Any()).Return(users, nil)

	req := httptest.NewRequest("GET", "/api/admin/users?search=acme", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	got := body["users"].([]interface{})
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].(map[string]interface{})["id"])

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total"])
}

func TestAdminUpdateUserEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, tokens := newTestApp(ctrl)
	token := adminToken(t, tokens)

	t.Run("success", func(t *testing.T) {
		m.users.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, update domain.UserUpdate) error {
				require.NotNil(t, update.Company)
				assert.Equal(t, "New Corp", *update.Company)
				assert.Nil(t, update.FirstName)
				return nil
			})

		req := jsonRequest("PUT", "/api/admin/users/u1", fiber.Map{"company": "New Corp"})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		req := jsonRequest("PUT", "/api/admin/users/u1", fiber.Map{"email": "hijack@example.com"})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Invalid request body", body["message"])
	})

	t.Run("user missing", func(t *testing.T) {
		m.users.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(autherror.ErrUserNotFound)

		req := jsonRequest("PUT", "/api/admin/users/missing", fiber.Map{"is_active": false})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminStatsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, tokens := newTestApp(ctrl)
	token := adminToken(t, tokens)

	m.users.EXPECT().Stats(gomock.Any()).Return(&domain.UserStats{TotalUsers: 12, ActiveUsers: 10}, nil)
	m.sessions.EXPECT().Stats(gomock.Any()).Return(&domain.SessionStats{TotalSessions: 40, ActiveSessions: 4}, nil)

	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	userStats := body["userStats"].(map[string]interface{})
	assert.Equal(t, float64(12), userStats["total_users"])
	sessionStats := body["sessionStats"].(map[string]interface{})
	assert.Equal(t, float64(4), sessionStats["active_sessions"])
}

func TestAdminListSessionsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, tokens := newTestApp(ctrl)
	token := adminToken(t, tokens)

	t.Run("date range filter", func(t *testing.T) {
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		m.sessions.EXPECT().ListByDateRange(gomock.Any(), from, to).Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/admin/sessions?start=2025-03-01&end=2025-03-31", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bad date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/sessions?start=yesterday", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("active listing", func(t *testing.T) {
		m.sessions.EXPECT().ListActive(gomock.Any()).Return([]domain.SessionWithUser{
			{Session: domain.Session{ID: "sess-1", UserEmail: "adaeze@example.com"}, FirstName: "Adaeze"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/admin/sessions/active", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		sessions := body["sessions"].([]interface{})
		require.Len(t, sessions, 1)
		assert.Equal(t, "Adaeze", sessions[0].(map[string]interface{})["first_name"])
	})
}

func TestAdminReportsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, tokens := newTestApp(ctrl)
	token := adminToken(t, tokens)

	m.users.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: "u1", Email: "adaeze@example.com", FirstName: "Adaeze"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/admin/reports/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "users_report_")
}

func TestAdminManagementEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, tokens := newTestApp(ctrl)
	token := adminToken(t, tokens)

	t.Run("create admin", func(t *testing.T) {
		m.admins.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req := jsonRequest("POST", "/api/admin/admins", fiber.Map{
			"username": "frontdesk",
			"password": "desk-pass-1",
			"email":    "desk@example.com",
		})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		admin := body["admin"].(map[string]interface{})
		assert.Equal(t, "admin", admin["role"])
	})

	t.Run("create admin weak password", func(t *testing.T) {
		req := jsonRequest("POST", "/api/admin/admins", fiber.Map{
			"username": "frontdesk",
			"password": "short",
			"email":    "desk@example.com",
		})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update password", func(t *testing.T) {
		m.admins.EXPECT().UpdatePassword(gomock.Any(), "admin-2", gomock.Any()).Return(nil)

		req := jsonRequest("PUT", "/api/admin/admins/admin-2/password", fiber.Map{
			"password": "new-pass-123",
		})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("delete admin not found", func(t *testing.T) {
		m.admins.EXPECT().Delete(gomock.Any(), "missing").Return(autherror.ErrAdminNotFound)

		req := httptest.NewRequest("DELETE", "/api/admin/admins/missing", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminSettingsEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m, tokens := newTestApp(ctrl)
	token := adminToken(t, tokens)

	t.Run("list", func(t *testing.T) {
		m.settings.EXPECT().List(gomock.Any()).Return([]domain.Setting{
			{Key: "session_timeout", Value: "3600", Description: "Session timeout in seconds"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/admin/settings", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		settings := body["settings"].([]interface{})
		require.Len(t, settings, 1)
		assert.Equal(t, "session_timeout", settings[0].(map[string]interface{})["key"])
	})

	t.Run("update", func(t *testing.T) {
		m.settings.EXPECT().Set(gomock.Any(), "session_timeout", "7200").Return(nil)

		req := jsonRequest("PUT", "/api/admin/settings/session_timeout", fiber.Map{"value": "7200"})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown key", func(t *testing.T) {
		m.settings.EXPECT().Set(gomock.Any(), "no_such_key", "1").Return(autherror.ErrSettingNotFound)

		req := jsonRequest("PUT", "/api/admin/settings/no_such_key", fiber.Map{"value": "1"})
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
