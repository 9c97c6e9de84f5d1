package handlers

import (
	"gym-tracker/app"
	"gym-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// MarkAttendance records whether the user went to the gym on a date
func MarkAttendance(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MarkAttendanceRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		log, err := a.Gym.MarkAttendance(req.Date, req.Attended, req.Notes)
		if err != nil {
			return handleError(c, "Failed to mark attendance", err)
		}
		return success(c, fiber.Map{"log": log})
	}
}

// GetGymMonth returns the attendance calendar for ?month=YYYY-MM
func GetGymMonth(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		month := c.Query("month")
		if err := a.Validator.Var("month", month, "omitempty,monthformat"); err != nil {
			return validationError(c, err)
		}

		result, err := a.Gym.Month(month)
		if err != nil {
			return handleError(c, "Failed to get attendance", err)
		}
		return success(c, withWarning(fiber.Map{
			"month":      result.Month,
			"logs":       result.Logs,
			"attendance": result.Attendance,
		}, result.Warning))
	}
}
