package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/shecare/internal/services"
)

func (handler *Handler) PeriodStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, found, err := handler.insightsService.Summary(user.ID)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}
	if !found {
		return c.JSON(fiber.Map{"message": "No data available"})
	}
	return c.JSON(buildCycleStatsView(summary))
}

func (handler *Handler) PeriodForecast(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	horizon, err := parseHorizonQuery(c.Query("horizon"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid horizon")
	}

	forecast, err := handler.insightsService.Forecast(user.ID, horizon)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}
	if forecast.Status != services.ForecastReady {
		return c.JSON(fiber.Map{
			"message":     forecast.Message,
			"predictions": []forecastEntryView{},
		})
	}
	return c.JSON(fiber.Map{
		"avg_cycle_length": forecast.AvgCycleLength,
		"predictions":      buildForecastEntryViews(forecast.Entries),
	})
}

func (handler *Handler) CurrentPhase(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	report, found, err := handler.insightsService.CurrentPhase(user.ID)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}
	if !found {
		return c.JSON(fiber.Map{"message": "No period data available", "phase": nil})
	}
	return c.JSON(buildPhaseView(report))
}
