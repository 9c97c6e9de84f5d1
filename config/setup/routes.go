package setup

import (
	"gym-tracker/app"
	"gym-tracker/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")
	api.Get("/status", handlers.GetStatus(application))

	api.Get("/profile", handlers.GetProfile(application))
	api.Post("/profile", handlers.RegisterProfile(application))
	api.Put("/profile", handlers.UpdateProfile(application))
	api.Get("/settings", handlers.GetSettings(application))
	api.Put("/settings", handlers.UpdateSettings(application))

	api.Get("/dashboard", handlers.GetDashboard(application))
	api.Post("/water", handlers.LogWater(application))
	api.Get("/water/history", handlers.GetWaterHistory(application))
	api.Post("/protein", handlers.LogProtein(application))
	api.Get("/protein/history", handlers.GetProteinHistory(application))
	api.Get("/foods", handlers.ListFoods)
	api.Post("/meals", handlers.LogMeal(application))
	api.Get("/meals/history", handlers.GetMealHistory(application))

	api.Post("/gym/attendance", handlers.MarkAttendance(application))
	api.Get("/gym", handlers.GetGymMonth(application))

	workouts := api.Group("/workouts")
	workouts.Get("/templates", handlers.GetWorkoutTemplates(application))
	workouts.Post("/templates/:id/exercises", handlers.AddExercise(application))
	workouts.Put("/templates/:id/exercises/:exerciseId", handlers.UpdateExercise(application))
	workouts.Delete("/templates/:id/exercises/:exerciseId", handlers.RemoveExercise(application))
	workouts.Get("/today", handlers.GetTodayWorkout(application))
	workouts.Post("/session", handlers.StartWorkout(application))
	workouts.Get("/session", handlers.GetActiveWorkout(application))
	workouts.Delete("/session", handlers.AbandonWorkout(application))
	workouts.Put("/session/sets", handlers.UpdateWorkoutSet(application))
	workouts.Post("/session/sets/toggle", handlers.ToggleWorkoutSet(application))
	workouts.Post("/session/complete", handlers.CompleteWorkout(application))
	workouts.Get("/history", handlers.GetWorkoutHistory(application))

	api.Get("/reminders", handlers.ListReminders(application))
	api.Get("/events", handlers.StreamEvents(application))
	api.Get("/export", handlers.ExportWorkbook(application))
}
