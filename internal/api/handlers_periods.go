package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) LogPeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := periodLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input, err := buildPeriodLogInput(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.periodService.LogPeriod(user.ID, input)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"period_id":    entry.ID,
		"cycle_length": entry.CycleLength,
	})
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit, err := parseLimitQuery(c.Query("limit"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}

	entries, err := handler.periodService.ListPeriods(user.ID, limit)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}
	return c.JSON(buildPeriodLogViews(entries))
}

func (handler *Handler) GetPeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period id")
	}

	entry, err := handler.periodService.GetPeriod(user.ID, periodID)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}
	return c.JSON(buildPeriodLogView(entry))
}

func (handler *Handler) UpdatePeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period id")
	}

	payload := periodPatchPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	patch, err := buildPeriodLogPatch(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.periodService.UpdatePeriod(user.ID, periodID, patch)
	if err != nil {
		return handler.periodServiceAPIError(c, err)
	}
	return c.JSON(buildPeriodLogView(entry))
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	periodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid period id")
	}

	if err := handler.periodService.DeletePeriod(user.ID, periodID); err != nil {
		return handler.periodServiceAPIError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
