package handlers

import (
	"errors"
	"log/slog"

	"gym-tracker/database"
	"gym-tracker/metrics"
	"gym-tracker/services"
	"gym-tracker/storage"
	"gym-tracker/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

// withWarning adds a non-empty warning to the response body
func withWarning(data fiber.Map, warning string) fiber.Map {
	if warning != "" {
		data["warning"] = warning
	}
	return data
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": errs,
		})
	}
	return badRequest(c, err.Error())
}

func storageUnavailable(c *fiber.Ctx, message string, err error) error {
	slog.Warn("storage unavailable",
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": message + ": storage unavailable",
	})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// handleError maps domain errors to their HTTP status
func handleError(c *fiber.Ctx, message string, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return validationError(c, err)
	case errors.Is(err, database.ErrNotFound):
		return notFound(c, message+": not found")
	case errors.Is(err, services.ErrExerciseNotFound),
		errors.Is(err, services.ErrUnknownFood),
		errors.Is(err, services.ErrProfileRequired):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrSetOutOfRange),
		errors.Is(err, metrics.ErrUnknownActivityLevel),
		errors.Is(err, metrics.ErrInvalidMeasurements):
		return badRequest(c, err.Error())
	case services.IsStateError(err):
		return conflict(c, err.Error())
	case storage.IsStorageError(err):
		return storageUnavailable(c, message, err)
	default:
		return serverErrorWithDetails(c, message, err)
	}
}
