package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/shecare/internal/services"
)

func (handler *Handler) internalError(c *fiber.Ctx, err error, message string) error {
	handler.log.Error(message, "error", err, "path", c.Path(), "request_id", c.Locals("requestid"))
	return apiError(c, fiber.StatusInternalServerError, message)
}

func (handler *Handler) periodServiceAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPeriodLogNotFound):
		return apiError(c, fiber.StatusNotFound, "period log not found")
	case errors.Is(err, services.ErrPeriodStartDateRequired):
		return apiError(c, fiber.StatusBadRequest, "start date is required")
	case errors.Is(err, services.ErrPeriodFlowInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid flow intensity")
	case errors.Is(err, services.ErrPeriodRangeInvalid):
		return apiError(c, fiber.StatusBadRequest, "end date is before start date")
	case errors.Is(err, services.ErrPeriodSymptomsInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid symptoms")
	case errors.Is(err, services.ErrPeriodNotesTooLong):
		return apiError(c, fiber.StatusBadRequest, "notes too long")
	case errors.Is(err, services.ErrPeriodLogCreateFailed):
		return handler.internalError(c, err, "failed to log period")
	case errors.Is(err, services.ErrPeriodLogUpdateFailed):
		return handler.internalError(c, err, "failed to update period")
	case errors.Is(err, services.ErrPeriodLogDeleteFailed):
		return handler.internalError(c, err, "failed to delete period")
	case errors.Is(err, services.ErrPeriodLogLoadFailed):
		return handler.internalError(c, err, "failed to load periods")
	default:
		return handler.internalError(c, err, "internal error")
	}
}

func (handler *Handler) authServiceAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAuthNameInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid name")
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	case errors.Is(err, services.ErrAuthEmailExists):
		return apiError(c, fiber.StatusConflict, "email already exists")
	case errors.Is(err, services.ErrUserNotFound):
		return apiError(c, fiber.StatusNotFound, "user not found")
	default:
		return handler.internalError(c, err, "authentication failed")
	}
}

func (handler *Handler) predictionServiceAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRiskBMIRequired):
		return apiError(c, fiber.StatusBadRequest, "bmi or height and weight are required")
	case errors.Is(err, services.ErrRiskAcneSeverityRequired):
		return apiError(c, fiber.StatusBadRequest, "acne severity is required")
	case errors.Is(err, services.ErrRiskFeaturesInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid features")
	case errors.Is(err, services.ErrPredictionSaveFailed):
		return handler.internalError(c, err, "failed to save prediction")
	case errors.Is(err, services.ErrPredictionLoadFailed):
		return handler.internalError(c, err, "failed to load predictions")
	default:
		return handler.internalError(c, err, "prediction failed")
	}
}
