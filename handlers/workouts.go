package handlers

import (
	"gym-tracker/app"
	"gym-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// ==================== TEMPLATES ====================

func GetWorkoutTemplates(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := a.Workouts.Templates()
		if err != nil {
			return handleError(c, "Failed to get templates", err)
		}
		return success(c, withWarning(fiber.Map{"templates": list.Templates}, list.Warning))
	}
}

// GetTodayWorkout returns the template scheduled for today
func GetTodayWorkout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		today, err := a.Workouts.TodayTemplate()
		if err != nil {
			return handleError(c, "Failed to get today's workout", err)
		}
		return success(c, withWarning(fiber.Map{
			"template": today.Template,
			"rest":     today.Rest,
		}, today.Warning))
	}
}

func AddExercise(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exercise, err := a.Workouts.AddExercise(c.Params("id"))
		if err != nil {
			return handleError(c, "Failed to add exercise", err)
		}
		return created(c, fiber.Map{"exercise": exercise})
	}
}

func UpdateExercise(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch models.ExercisePatch
		if err := c.BodyParser(&patch); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&patch); err != nil {
			return validationError(c, err)
		}

		exercise, err := a.Workouts.UpdateExercise(c.Params("id"), c.Params("exerciseId"), patch)
		if err != nil {
			return handleError(c, "Failed to update exercise", err)
		}
		return success(c, fiber.Map{"exercise": exercise})
	}
}

func RemoveExercise(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Workouts.RemoveExercise(c.Params("id"), c.Params("exerciseId")); err != nil {
			return handleError(c, "Failed to remove exercise", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ==================== SESSION ====================

func StartWorkout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.StartWorkoutRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		active, err := a.Workouts.Start(req.TemplateID)
		if err != nil {
			return handleError(c, "Failed to start workout", err)
		}
		return created(c, fiber.Map{"workout": active})
	}
}

func GetActiveWorkout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		active := a.Workouts.Active()
		if active == nil {
			return notFound(c, "No workout in progress")
		}
		return success(c, fiber.Map{"workout": active})
	}
}

// UpdateWorkoutSet edits reps or weight of one set of the active workout
func UpdateWorkoutSet(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch models.SetPatch
		if err := c.BodyParser(&patch); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&patch); err != nil {
			return validationError(c, err)
		}

		active, err := a.Workouts.UpdateSet(patch)
		if err != nil {
			return handleError(c, "Failed to update set", err)
		}
		return success(c, fiber.Map{"workout": active})
	}
}

func ToggleWorkoutSet(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ToggleSetRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		active, err := a.Workouts.ToggleSet(req.ExerciseID, req.SetIndex)
		if err != nil {
			return handleError(c, "Failed to toggle set", err)
		}
		return success(c, fiber.Map{"workout": active})
	}
}

// CompleteWorkout appends the active workout to history
func CompleteWorkout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CompleteWorkoutRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		session, err := a.Workouts.Complete(req.Notes)
		if err != nil {
			return handleError(c, "Failed to complete workout", err)
		}
		return created(c, fiber.Map{"session": session})
	}
}

// AbandonWorkout discards the active workout without saving it
func AbandonWorkout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !a.Workouts.Abandon() {
			return notFound(c, "No workout in progress")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetWorkoutHistory returns grouped history, or the ?recent=N latest sessions
func GetWorkoutHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if recent := c.QueryInt("recent", 0); recent > 0 {
			latest, err := a.Workouts.Recent(recent)
			if err != nil {
				return handleError(c, "Failed to get workout history", err)
			}
			return success(c, withWarning(fiber.Map{"sessions": latest.Sessions}, latest.Warning))
		}

		history, err := a.Workouts.History()
		if err != nil {
			return handleError(c, "Failed to get workout history", err)
		}
		return success(c, fiber.Map{"history": history})
	}
}
