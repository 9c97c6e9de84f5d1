package handlers

import (
	"gym-tracker/app"
	"gym-tracker/models"
	"gym-tracker/services"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns today's progress, or ?date=YYYY-MM-DD
func GetDashboard(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if err := a.Validator.Var("date", date, "omitempty,dateformat"); err != nil {
			return validationError(c, err)
		}

		dashboard, err := a.Intake.Dashboard(date)
		if err != nil {
			return handleError(c, "Failed to build dashboard", err)
		}
		return success(c, fiber.Map{"dashboard": dashboard})
	}
}

func LogWater(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LogWaterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		result, err := a.Intake.LogWater(req.Amount)
		if err != nil {
			return handleError(c, "Failed to log water", err)
		}
		return created(c, fiber.Map{"result": result})
	}
}

func GetWaterHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		history, err := a.Intake.WaterHistory()
		if err != nil {
			return handleError(c, "Failed to get water history", err)
		}
		return success(c, fiber.Map{"history": history})
	}
}

// LogProtein logs either a quick amount or a food from the food database
func LogProtein(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LogProteinRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		var (
			result *services.IntakeResult[models.ProteinLog]
			err    error
		)
		switch {
		case req.FoodID != "":
			result, err = a.Intake.LogProteinFromFood(req.FoodID, req.Quantity)
		case req.Amount > 0:
			result, err = a.Intake.LogProtein(req.Amount, req.Source)
		default:
			return badRequest(c, "Either amount or foodId is required")
		}
		if err != nil {
			return handleError(c, "Failed to log protein", err)
		}
		return created(c, fiber.Map{"result": result})
	}
}

func GetProteinHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		history, err := a.Intake.ProteinHistory()
		if err != nil {
			return handleError(c, "Failed to get protein history", err)
		}
		return success(c, fiber.Map{"history": history})
	}
}

// ListFoods returns the food database, optionally filtered by ?category=
func ListFoods(c *fiber.Ctx) error {
	category := c.Query("category")

	foods := make([]models.FoodItem, 0, len(models.FoodDatabase))
	for _, f := range models.FoodDatabase {
		if category == "" || f.Category == category {
			foods = append(foods, f)
		}
	}
	return success(c, fiber.Map{"foods": foods})
}

func LogMeal(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LogMealRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		result, err := a.Intake.LogMeal(models.MealLog{
			Name:     req.Name,
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fats:     req.Fats,
		})
		if err != nil {
			return handleError(c, "Failed to log meal", err)
		}
		return created(c, fiber.Map{"result": result})
	}
}

func GetMealHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		history, err := a.Intake.MealHistory()
		if err != nil {
			return handleError(c, "Failed to get meal history", err)
		}
		return success(c, fiber.Map{"history": history})
	}
}
