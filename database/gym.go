package database

import (
	"gym-tracker/models"
	"gym-tracker/storage"
)

func (r *Repository) ListGymLogs() ([]models.GymLog, error) {
	return loadList[models.GymLog](r, storage.KeyGymLogs)
}

// MarkAttendance records attendance for date. An existing record for the
// date is updated in place with a fresh timestamp, otherwise one is appended.
func (r *Repository) MarkAttendance(date string, attended bool, notes *string) (models.GymLog, error) {
	log := models.GymLog{
		Date:      date,
		Attended:  attended,
		Notes:     notes,
		Timestamp: r.now(),
	}
	if err := r.validate.Validate(log); err != nil {
		return log, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	logs, err := loadList[models.GymLog](r, storage.KeyGymLogs)
	if err != nil {
		return log, err
	}

	found := false
	for i := range logs {
		if logs[i].Date != date {
			continue
		}
		logs[i].Attended = attended
		logs[i].Timestamp = log.Timestamp
		if notes != nil {
			logs[i].Notes = notes
		}
		log = logs[i]
		found = true
		break
	}

	if !found {
		log.ID = models.NewID()
		logs = append(logs, log)
	}

	if err := storage.Set(r.store, storage.KeyGymLogs, logs); err != nil {
		return log, err
	}
	return log, nil
}
