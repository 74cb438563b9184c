package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/teamtrack/attendance-service/internal/attendance/dto"
	"github.com/teamtrack/attendance-service/internal/attendance/service"
)

const (
	localUserID  = "userID"
	localIsAdmin = "isAdmin"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return badRequest(c, "username, email and a password of at least 8 characters are required")
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserOutput(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if err := validate.Struct(input); err != nil {
		return badRequest(c, "missing username or password")
	}

	tokens, user, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"access_token": tokens.AccessToken,
		"expires_at":   tokens.ExpiresAt,
		"user":         dto.NewUserOutput(user),
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.UserContext(), CallerID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserOutput(user),
	})
}

// RequireAuth verifies the bearer token and stores the caller's identity in
// request locals; services always receive it as an explicit argument.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "missing or malformed token",
			})
		}

		claims, err := h.tokenService.VerifyAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "invalid or expired token",
			})
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localIsAdmin, claims.IsAdmin)

		return c.Next()
	}
}

func (h *AuthHandler) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals(localIsAdmin).(bool); !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "admin privileges required",
			})
		}

		return c.Next()
	}
}

// CallerID returns the authenticated user id set by RequireAuth.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}
