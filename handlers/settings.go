package handlers

import (
	"gym-tracker/app"
	"gym-tracker/models"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := a.Settings.Get()
		if err != nil {
			return handleError(c, "Failed to get settings", err)
		}
		return success(c, fiber.Map{"settings": settings})
	}
}

// UpdateSettings replaces the settings. A reminder failure is reported
// as a warning next to the saved settings.
func UpdateSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var settings models.UserSettings
		if err := c.BodyParser(&settings); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&settings); err != nil {
			return validationError(c, err)
		}

		result, err := a.Settings.Save(c.Context(), settings)
		if err != nil {
			return handleError(c, "Failed to update settings", err)
		}

		resp := fiber.Map{"settings": result.Settings}
		if result.ReminderWarning != "" {
			resp["warning"] = result.ReminderWarning
		}
		return success(c, resp)
	}
}
