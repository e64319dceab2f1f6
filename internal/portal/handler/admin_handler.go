package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MannyGDy/Captive-Portal/internal/portal/dto"
	"github.com/MannyGDy/Captive-Portal/internal/portal/service"
	"github.com/MannyGDy/Captive-Portal/pkg/logger"
)

type AdminHandler struct {
	admins   *service.AdminService
	sessions *service.SessionService
	reports  *service.ReportService
	log      logger.Logger
}

func NewAdminHandler(admins *service.AdminService, sessions *service.SessionService,
	reports *service.ReportService, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		admins:   admins,
		sessions: sessions,
		reports:  reports,
		log:      log,
	}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var input dto.AdminLoginInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := input.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}

	result, err := h.admins.Login(c.Context(), input)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin login successful",
		"token":   result.Token,
		"admin":   result.Admin,
	})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	search := c.Query("search")

	result, err := h.admins.ListUsers(c.Context(), page, limit, search)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"users":      result.Users,
		"pagination": result.Pagination,
	})
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	detail, err := h.admins.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"user":     detail.User,
		"sessions": detail.Sessions,
	})
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var input dto.UpdateUserInput
	if err := decodeStrict(c.Body(), &input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := input.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}

	if err := h.admins.UpdateUser(c.Context(), c.Params("id"), input); err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
	})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.admins.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.admins.Stats(c.Context())
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"userStats":    stats.UserStats,
		"sessionStats": stats.SessionStats,
	})
}

func (h *AdminHandler) DailyStats(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)

	stats, err := h.sessions.DailyStats(c.Context(), days)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

func (h *AdminHandler) ListSessions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)

	filter := dto.SessionFilter{
		Email: c.Query("email"),
		IP:    c.Query("ip"),
	}

	var err error
	if filter.From, err = parseDateQuery(c.Query("start")); err != nil {
		return failValidation(c, []dto.FieldError{{Field: "start", Message: "Invalid start date"}})
	}
	if filter.To, err = parseDateQuery(c.Query("end")); err != nil {
		return failValidation(c, []dto.FieldError{{Field: "end", Message: "Invalid end date"}})
	}

	sessions, err := h.sessions.List(c.Context(), page, limit, filter)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"sessions": sessions,
	})
}

func (h *AdminHandler) ActiveSessions(c *fiber.Ctx) error {
	sessions, err := h.sessions.Active(c.Context())
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"sessions": sessions,
	})
}

func (h *AdminHandler) UsersReport(c *fiber.Ctx) error {
	data, filename, err := h.reports.UsersCSV(c.Context())
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return sendCSV(c, data, filename)
}

func (h *AdminHandler) SessionsReport(c *fiber.Ctx) error {
	data, filename, err := h.reports.SessionsCSV(c.Context())
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return sendCSV(c, data, filename)
}

func (h *AdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.admins.ListAdmins(c.Context())
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"admins":  admins,
	})
}

func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var input dto.CreateAdminInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := input.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}

	admin, err := h.admins.CreateAdmin(c.Context(), input)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Admin user created successfully",
		"admin":   admin,
	})
}

func (h *AdminHandler) UpdateAdmin(c *fiber.Ctx) error {
	var input dto.UpdateAdminInput
	if err := decodeStrict(c.Body(), &input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := input.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}

	if err := h.admins.UpdateAdmin(c.Context(), c.Params("id"), input); err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin updated successfully",
	})
}

func (h *AdminHandler) UpdateAdminPassword(c *fiber.Ctx) error {
	var input dto.UpdateAdminPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := input.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}

	if err := h.admins.UpdateAdminPassword(c.Context(), c.Params("id"), input.Password); err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password updated successfully",
	})
}

func (h *AdminHandler) DeleteAdmin(c *fiber.Ctx) error {
	if err := h.admins.DeleteAdmin(c.Context(), c.Params("id")); err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin deleted successfully",
	})
}

func (h *AdminHandler) ListSettings(c *fiber.Ctx) error {
	settings, err := h.admins.ListSettings(c.Context())
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"settings": settings,
	})
}

func (h *AdminHandler) UpdateSetting(c *fiber.Ctx) error {
	var input dto.UpdateSettingInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.admins.UpdateSetting(c.Context(), c.Params("key"), input.Value); err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Setting updated successfully",
	})
}

func (h *AdminHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Admin service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// decodeStrict rejects unknown fields so typed update requests cannot
// smuggle non-editable columns.
func decodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func parseDateQuery(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func sendCSV(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
