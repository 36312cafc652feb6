package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/shecare/internal/models"
)

const (
	authCookieName = "shecare_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// AuthRequired rejects requests without a valid session. Users with a pending
// forced password change may only reach the change-password and me endpoints.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	if user.MustChangePassword && !allowedDuringPasswordChange(c.Path()) {
		return apiError(c, fiber.StatusForbidden, "password change required")
	}
	return c.Next()
}

func allowedDuringPasswordChange(path string) bool {
	return path == "/api/auth/change-password" || path == "/api/auth/me"
}
