package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) NutritionForSymptom(c *fiber.Ctx) error {
	advice, ok := handler.nutrition.Lookup(c.Params("symptom"))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "no advice for symptom")
	}
	return c.JSON(buildNutritionView(advice))
}

// NutritionForLatestPeriod returns advice for the symptoms logged with the
// user's most recent period. Unknown symptoms are skipped.
func (handler *Handler) NutritionForLatestPeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	latest, found, err := handler.periodService.LatestPeriod(user.ID)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}

	var symptoms []string
	if found {
		symptoms = latest.Symptoms
	}
	advice := handler.nutrition.AdviceFor(symptoms)

	views := make([]nutritionView, 0, len(advice))
	for _, entry := range advice {
		views = append(views, buildNutritionView(entry))
	}
	return c.JSON(fiber.Map{
		"symptoms":  nonNilStrings(symptoms),
		"available": handler.nutrition.Symptoms(),
		"advice":    views,
	})
}
