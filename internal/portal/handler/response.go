package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
	"github.com/MannyGDy/Captive-Portal/internal/portal/dto"
	"github.com/MannyGDy/Captive-Portal/pkg/logger"
)

// All error responses share the {success:false, message, errors?}
// envelope the portal frontend expects.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func failValidation(c *fiber.Ctx, errs []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

// mapServiceError converts service-layer sentinels to API status codes.
// Unrecognized errors are logged and reported as a generic internal
// failure so storage details never leak to the caller.
func mapServiceError(c *fiber.Ctx, log logger.Logger, err error) error {
	switch {
	case errors.Is(err, autherror.ErrEmailAlreadyRegistered),
		errors.Is(err, autherror.ErrPhoneAlreadyRegistered),
		errors.Is(err, autherror.ErrUsernameTaken),
		errors.Is(err, autherror.ErrInvalidPhoneFormat),
		errors.Is(err, autherror.ErrNoFieldsToUpdate):
		return fail(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, autherror.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, autherror.ErrUserNotFound),
		errors.Is(err, autherror.ErrAdminNotFound),
		errors.Is(err, autherror.ErrSettingNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())

	default:
		log.Error("request failed", logger.String("path", c.Path()), logger.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
