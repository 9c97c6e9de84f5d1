package handlers

import (
	"bytes"
	"fmt"

	"gym-tracker/app"
	"gym-tracker/export"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportWorkbook downloads every collection as an XLSX workbook
func ExportWorkbook(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := snapshot(a)
		if err != nil {
			return handleError(c, "Failed to export data", err)
		}

		var buf bytes.Buffer
		if err := export.WriteWorkbook(&buf, snap); err != nil {
			return serverErrorWithDetails(c, "Failed to export data", err)
		}

		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="gym-tracker-%s.xlsx"`, a.Today()))
		return c.Send(buf.Bytes())
	}
}

func snapshot(a *app.App) (export.Snapshot, error) {
	snap := export.Snapshot{Location: a.Location}
	var err error

	if snap.Water, err = a.Repo.ListWaterLogs(); err != nil {
		return snap, err
	}
	if snap.Protein, err = a.Repo.ListProteinLogs(); err != nil {
		return snap, err
	}
	if snap.Meals, err = a.Repo.ListMealLogs(); err != nil {
		return snap, err
	}
	if snap.Gym, err = a.Repo.ListGymLogs(); err != nil {
		return snap, err
	}
	if snap.Sessions, err = a.Repo.ListWorkoutSessions(); err != nil {
		return snap, err
	}
	if snap.Templates, err = a.Repo.ListWorkoutTemplates(); err != nil {
		return snap, err
	}
	return snap, nil
}
