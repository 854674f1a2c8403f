package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/signup", handler.ShowSignupPage)
	app.Post("/signup", handler.Signup)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.AuthRequired, handler.Logout)

	app.Get("/", handler.AuthRequired, handler.ShowDashboard)

	app.Get("/habits", handler.AuthRequired, handler.ShowHabits)
	app.Post("/habits/create", handler.AuthRequired, handler.CreateHabit)
	app.Post("/habits/:id/delete", handler.AuthRequired, handler.DeleteHabit)

	app.Post("/toggle", handler.AuthRequired, handler.ToggleCheckIn)
	app.Post("/toggle-theme", handler.AuthRequired, handler.ToggleTheme)

	app.Get("/analytics", handler.AuthRequired, handler.ShowAnalytics)
	app.Get("/analytics.json", handler.AuthRequired, handler.AnalyticsJSON)

	app.Post("/account/delete", handler.AuthRequired, handler.DeleteAccount)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
