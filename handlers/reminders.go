package handlers

import (
	"gym-tracker/app"

	"github.com/gofiber/fiber/v2"
)

func ListReminders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reminders, err := a.Reminders.List()
		if err != nil {
			return handleError(c, "Failed to list reminders", err)
		}
		return success(c, fiber.Map{"reminders": reminders})
	}
}
