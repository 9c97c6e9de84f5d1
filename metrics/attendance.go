package metrics

import (
	"strings"

	"gym-tracker/models"
)

type Attendance struct {
	Attended   int `json:"attended"`
	Missed     int `json:"missed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// MonthlyAttendance counts gym logs in month (YYYY-MM). Only days with a
// record count towards the total.
func MonthlyAttendance(logs []models.GymLog, month string) Attendance {
	var a Attendance
	prefix := month + "-"
	for _, l := range logs {
		if !strings.HasPrefix(l.Date, prefix) {
			continue
		}
		a.Total++
		if l.Attended {
			a.Attended++
		} else {
			a.Missed++
		}
	}
	if a.Total > 0 {
		a.Percentage = int(roundHalfUp(float64(a.Attended) / float64(a.Total) * 100))
	}
	return a
}

// LogsForMonth returns the gym logs in month ordered by date
func LogsForMonth(logs []models.GymLog, month string) []models.GymLog {
	out := make([]models.GymLog, 0)
	prefix := month + "-"
	for _, l := range logs {
		if strings.HasPrefix(l.Date, prefix) {
			out = append(out, l)
		}
	}
	sortByDate(out)
	return out
}
