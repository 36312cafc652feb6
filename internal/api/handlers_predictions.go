package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) CreatePrediction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := riskAssessmentPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	prediction, err := handler.predictionService.Assess(user.ID, buildRiskAssessmentInput(payload))
	if err != nil {
		return handler.predictionServiceAPIError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(predictionView{
		ID:               prediction.ID,
		PCOSRisk:         prediction.PCOSRisk,
		AnemiaRisk:       prediction.AnemiaRisk,
		BreastCancerRisk: prediction.BreastCancerRisk,
		CreatedAt:        formatTimestamp(prediction.CreatedAt),
	})
}

func (handler *Handler) PredictionHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	predictions, err := handler.predictionService.History(user.ID)
	if err != nil {
		return handler.predictionServiceAPIError(c, err)
	}
	return c.JSON(buildPredictionHistoryViews(predictions))
}
