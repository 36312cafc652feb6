package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/anonymous", handler.AnonymousLogin)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	periods := api.Group("/periods", handler.AuthRequired)
	periods.Post("", handler.LogPeriod)
	periods.Get("", handler.ListPeriods)
	periods.Get("/stats", handler.PeriodStats)
	periods.Get("/forecast", handler.PeriodForecast)
	periods.Get("/phase", handler.CurrentPhase)
	periods.Get("/:id", handler.GetPeriod)
	periods.Put("/:id", handler.UpdatePeriod)
	periods.Delete("/:id", handler.DeletePeriod)

	predictions := api.Group("/predictions", handler.AuthRequired)
	predictions.Post("", handler.CreatePrediction)
	predictions.Get("", handler.PredictionHistory)

	nutrition := api.Group("/nutrition", handler.AuthRequired)
	nutrition.Get("", handler.NutritionForLatestPeriod)
	nutrition.Get("/:symptom", handler.NutritionForSymptom)

	app.Use(handler.NotFound)
}
