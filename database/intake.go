package database

import (
	"gym-tracker/models"
	"gym-tracker/storage"
)

// ==================== WATER ====================

func (r *Repository) ListWaterLogs() ([]models.WaterLog, error) {
	return loadList[models.WaterLog](r, storage.KeyWaterLogs)
}

func (r *Repository) AppendWaterLog(log models.WaterLog) (models.WaterLog, error) {
	r.stamp(&log.ID, &log.Timestamp, &log.Date)
	return appendItem(r, storage.KeyWaterLogs, log)
}

// ==================== PROTEIN ====================

func (r *Repository) ListProteinLogs() ([]models.ProteinLog, error) {
	return loadList[models.ProteinLog](r, storage.KeyProteinLogs)
}

func (r *Repository) AppendProteinLog(log models.ProteinLog) (models.ProteinLog, error) {
	r.stamp(&log.ID, &log.Timestamp, &log.Date)
	return appendItem(r, storage.KeyProteinLogs, log)
}

// ==================== MEALS ====================

func (r *Repository) ListMealLogs() ([]models.MealLog, error) {
	return loadList[models.MealLog](r, storage.KeyMealLogs)
}

func (r *Repository) AppendMealLog(log models.MealLog) (models.MealLog, error) {
	r.stamp(&log.ID, &log.Timestamp, &log.Date)
	return appendItem(r, storage.KeyMealLogs, log)
}
