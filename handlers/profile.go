package handlers

import (
	"gym-tracker/app"
	"gym-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// GetStatus reports onboarding state, what is running and which
// collections hold data
func GetStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		onboarding, err := a.Profile.Status()
		if err != nil {
			return handleError(c, "Failed to read profile", err)
		}

		status := withWarning(fiber.Map{
			"onboarded":   onboarding.Onboarded,
			"today":       a.Today(),
			"timezone":    a.Location.String(),
			"subscribers": a.Events.Subscribers(),
		}, onboarding.Warning)
		if collections, err := a.Collections(); err != nil {
			a.Logger.Warn("Failed to list stored collections", "error", err)
		} else {
			status["collections"] = collections
		}
		if active := a.Workouts.Active(); active != nil {
			status["activeWorkout"] = active.Session.TemplateID
		}
		return success(c, status)
	}
}

func GetProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		overview, err := a.Profile.Overview()
		if err != nil {
			return handleError(c, "Failed to get profile", err)
		}
		return success(c, fiber.Map{"profile": overview})
	}
}

// RegisterProfile completes onboarding
func RegisterProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var profile models.UserProfile
		if err := c.BodyParser(&profile); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&profile); err != nil {
			return validationError(c, err)
		}

		overview, err := a.Profile.Register(c.Context(), profile)
		if err != nil {
			return handleError(c, "Failed to save profile", err)
		}

		return created(c, fiber.Map{"profile": overview})
	}
}

func UpdateProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var profile models.UserProfile
		if err := c.BodyParser(&profile); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&profile); err != nil {
			return validationError(c, err)
		}

		overview, err := a.Profile.Update(profile)
		if err != nil {
			return handleError(c, "Failed to update profile", err)
		}

		return success(c, fiber.Map{"profile": overview})
	}
}
