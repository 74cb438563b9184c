package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apperr "github.com/teamtrack/attendance-service/internal/errors"
)

var validate = validator.New()

// fail maps a service error onto its HTTP status and the uniform
// {success:false, message} body. Unknown errors become a 500 without leaking
// internals.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"success": false,
		"message": messageFor(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrMissingLocation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrAdminRequired),
		errors.Is(err, apperr.ErrSelfDemotion):
		return fiber.StatusForbidden
	case errors.Is(err, apperr.ErrNoActiveCheckIn),
		errors.Is(err, apperr.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrAlreadyCheckedIn),
		errors.Is(err, apperr.ErrUsernameTaken),
		errors.Is(err, apperr.ErrEmailTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if statusFor(err) == fiber.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
