package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, admin *AdminHandler, m *AuthMiddleware) {
	api := app.Group("/api")
	api.Get("/health", auth.Health)

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", auth.Register)
	authRoutes.Post("/login", auth.Login)
	authRoutes.Get("/profile", m.RequireUser, auth.Profile)
	authRoutes.Post("/logout", m.RequireUser, auth.Logout)
	authRoutes.Get("/health", auth.Health)

	adminRoutes := api.Group("/admin")
	adminRoutes.Post("/login", admin.Login)
	adminRoutes.Get("/health", admin.Health)

	// Everything below requires a valid admin token. Authorization is
	// binary: the role claim does not narrow access.
	adminRoutes.Use(m.RequireAdmin)
	adminRoutes.Get("/users", admin.ListUsers)
	adminRoutes.Get("/users/:id", admin.GetUser)
	adminRoutes.Put("/users/:id", admin.UpdateUser)
	adminRoutes.Delete("/users/:id", admin.DeleteUser)
	adminRoutes.Get("/stats", admin.Stats)
	adminRoutes.Get("/stats/daily", admin.DailyStats)
	adminRoutes.Get("/sessions", admin.ListSessions)
	adminRoutes.Get("/sessions/active", admin.ActiveSessions)
	adminRoutes.Get("/reports/users", admin.UsersReport)
	adminRoutes.Get("/reports/sessions", admin.SessionsReport)
	adminRoutes.Get("/admins", admin.ListAdmins)
	adminRoutes.Post("/admins", admin.CreateAdmin)
	adminRoutes.Put("/admins/:id", admin.UpdateAdmin)
	adminRoutes.Put("/admins/:id/password", admin.UpdateAdminPassword)
	adminRoutes.Delete("/admins/:id", admin.DeleteAdmin)
	adminRoutes.Get("/settings", admin.ListSettings)
	adminRoutes.Put("/settings/:key", admin.UpdateSetting)
}
