// Package export writes the tracked data as an XLSX workbook
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gym-tracker/models"

	"github.com/xuri/excelize/v2"
)

const (
	SheetWater    = "Water"
	SheetProtein  = "Protein"
	SheetMeals    = "Meals"
	SheetGym      = "Gym"
	SheetWorkouts = "Workouts"
)

// Snapshot is everything that goes into one workbook
type Snapshot struct {
	Water     []models.WaterLog
	Protein   []models.ProteinLog
	Meals     []models.MealLog
	Gym       []models.GymLog
	Sessions  []models.WorkoutSession
	Templates []models.WorkoutTemplate
	Location  *time.Location
}

type sheet struct {
	name    string
	headers []interface{}
	rows    [][]interface{}
}

// WriteWorkbook renders snap as XLSX into w, one sheet per collection
func WriteWorkbook(w io.Writer, snap Snapshot) error {
	loc := snap.Location
	if loc == nil {
		loc = time.Local
	}

	f := excelize.NewFile()
	defer f.Close()

	sheets := []sheet{
		waterSheet(snap.Water, loc),
		proteinSheet(snap.Protein, loc),
		mealSheet(snap.Meals, loc),
		gymSheet(snap.Gym),
		workoutSheet(snap.Sessions, snap.Templates),
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}

		if err := writeRows(f, s); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, s sheet) error {
	rows := append([][]interface{}{s.headers}, s.rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", s.name, i+1, err)
		}
	}
	return nil
}

func clock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format("15:04")
}

func waterSheet(logs []models.WaterLog, loc *time.Location) sheet {
	s := sheet{name: SheetWater, headers: []interface{}{"Date", "Time", "Amount (ml)"}}
	for _, l := range logs {
		s.rows = append(s.rows, []interface{}{l.Date, clock(l.Timestamp, loc), l.Amount})
	}
	return s
}

func proteinSheet(logs []models.ProteinLog, loc *time.Location) sheet {
	s := sheet{name: SheetProtein, headers: []interface{}{"Date", "Time", "Amount (g)", "Source"}}
	for _, l := range logs {
		s.rows = append(s.rows, []interface{}{l.Date, clock(l.Timestamp, loc), l.Amount, l.Source})
	}
	return s
}

func mealSheet(logs []models.MealLog, loc *time.Location) sheet {
	s := sheet{name: SheetMeals, headers: []interface{}{"Date", "Time", "Meal", "Calories", "Protein (g)", "Carbs (g)", "Fats (g)"}}
	for _, l := range logs {
		s.rows = append(s.rows, []interface{}{l.Date, clock(l.Timestamp, loc), l.Name, l.Calories, l.Protein, l.Carbs, l.Fats})
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func gymSheet(logs []models.GymLog) sheet {
	s := sheet{name: SheetGym, headers: []interface{}{"Date", "Attended", "Notes"}}
	for _, l := range logs {
		notes := ""
		if l.Notes != nil {
			notes = *l.Notes
		}
		s.rows = append(s.rows, []interface{}{l.Date, yesNo(l.Attended), notes})
	}
	return s
}

// workoutSheet writes one row per set, resolving the template name by id
func workoutSheet(sessions []models.WorkoutSession, templates []models.WorkoutTemplate) sheet {
	names := make(map[string]string, len(templates))
	for _, t := range templates {
		names[t.ID] = t.Name
	}

	s := sheet{name: SheetWorkouts, headers: []interface{}{"Date", "Workout", "Duration (min)", "Exercise", "Set", "Reps", "Weight (kg)", "Completed"}}
	for _, session := range sessions {
		workout := names[session.TemplateID]
		if workout == "" {
			workout = session.TemplateID
		}
		duration := ""
		if session.Duration != nil {
			duration = fmt.Sprint(*session.Duration)
		}

		for _, ex := range session.Exercises {
			for i, set := range ex.Sets {
				s.rows = append(s.rows, []interface{}{
					session.Date, workout, duration, strings.TrimSpace(ex.Name), i + 1, set.Reps, set.Weight, yesNo(set.Completed),
				})
			}
		}
	}
	return s
}
