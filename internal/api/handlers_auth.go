package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/shecare/internal/models"
	"github.com/terraincognita07/shecare/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(input.Name, input.Email, input.Password)
	if errors.Is(err, services.ErrAuthCredentialsInvalid) {
		return apiError(c, fiber.StatusBadRequest, "invalid email or password")
	}
	if err != nil {
		return handler.authServiceAPIError(c, err)
	}

	handler.log.Info("user registered", "user_id", user.ID)
	return handler.respondWithSession(c, fiber.StatusCreated, &user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		}
		return handler.authServiceAPIError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)

	return handler.respondWithSession(c, fiber.StatusOK, &user)
}

func (handler *Handler) AnonymousLogin(c *fiber.Ctx) error {
	user, err := handler.authService.CreateAnonymous()
	if err != nil {
		return handler.authServiceAPIError(c, err)
	}
	return handler.respondWithSession(c, fiber.StatusCreated, &user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(buildUserView(*user))
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
		}
		return handler.authServiceAPIError(c, err)
	}

	user.MustChangePassword = false
	return handler.respondWithSession(c, fiber.StatusOK, user)
}

func (handler *Handler) respondWithSession(c *fiber.Ctx, status int, user *models.User) error {
	token, err := handler.issueSession(c, user)
	if err != nil {
		return handler.internalError(c, err, "failed to create session")
	}
	return c.Status(status).JSON(sessionView{
		UserID:             user.ID,
		Name:               user.Name,
		IsAnonymous:        user.IsAnonymous,
		MustChangePassword: user.MustChangePassword,
		Token:              token,
	})
}
