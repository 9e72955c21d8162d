package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/recover", handler.Recover)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.ListEntries)
	entries.Post("", handler.CreateEntry)
	entries.Get("/:id", handler.GetEntry)
	entries.Put("/:id", handler.UpdateEntry)
	entries.Delete("/:id", handler.DeleteEntry)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("", handler.ListGoals)
	goals.Post("", handler.CreateGoal)
	goals.Get("/overview", handler.GoalsOverview)
	goals.Get("/:id", handler.GetGoal)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Post("/:id/progress", handler.SetGoalProgress)
	goals.Post("/:id/milestones/:pos/toggle", handler.ToggleGoalMilestone)
	goals.Delete("/:id", handler.DeleteGoal)

	routines := api.Group("/routines", handler.AuthRequired)
	routines.Get("", handler.ListRoutines)
	routines.Post("", handler.CreateRoutine)
	routines.Put("/:id", handler.UpdateRoutine)
	routines.Delete("/:id", handler.DeleteRoutine)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("", handler.CalendarMonth)
	calendar.Get("/week", handler.CalendarWeek)

	api.Get("/timeline", handler.AuthRequired, handler.Timeline)
	api.Get("/slider", handler.AuthRequired, handler.Slider)

	api.Post("/import/legacy", handler.AuthRequired, handler.ImportLegacy)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Post("/regenerate-recovery-code", handler.RegenerateRecoveryCode)
	settings.Get("/preferences", handler.GetPreferences)
	settings.Put("/preferences", handler.UpdatePreferences)
	settings.Delete("/delete-account", handler.DeleteAccount)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
