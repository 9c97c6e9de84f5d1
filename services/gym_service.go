package services

import (
	"log/slog"

	"gym-tracker/metrics"
	"gym-tracker/models"
)

type GymMonth struct {
	Month      string             `json:"month"`
	Logs       []models.GymLog    `json:"logs"`
	Attendance metrics.Attendance `json:"attendance"`
	Warning    string             `json:"warning,omitempty"`
}

// GymService handles gym attendance
type GymService struct {
	repo   GymRepository
	clock  Clock
	logger *slog.Logger
}

func NewGymService(repo GymRepository, clock Clock, logger *slog.Logger) *GymService {
	return &GymService{repo: repo, clock: clock, logger: logger}
}

// MarkAttendance records whether the user went to the gym on date.
// An empty date means today.
func (gs *GymService) MarkAttendance(date string, attended bool, notes *string) (models.GymLog, error) {
	if date == "" {
		date = gs.clock.Today()
	}
	return gs.repo.MarkAttendance(date, attended, notes)
}

// Month returns the attendance calendar for month (YYYY-MM). An empty
// month means the current one. Unreadable logs show an empty month.
func (gs *GymService) Month(month string) (*GymMonth, error) {
	if month == "" {
		month = gs.clock.Month()
	}

	logs, err := gs.repo.ListGymLogs()
	warning, err := readFallback(gs.logger, "gym", err)
	if err != nil {
		return nil, err
	}

	return &GymMonth{
		Month:      month,
		Logs:       metrics.LogsForMonth(logs, month),
		Attendance: metrics.MonthlyAttendance(logs, month),
		Warning:    warning,
	}, nil
}
