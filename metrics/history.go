package metrics

import (
	"sort"

	"gym-tracker/models"
)

type DateGroup[T Entry] struct {
	Date string `json:"date"`
	Logs []T    `json:"logs"`
}

// GroupByDate buckets logs per date. Dates are ordered newest first and
// each bucket is ordered by timestamp, newest first.
func GroupByDate[T Entry](logs []T) []DateGroup[T] {
	index := make(map[string]int)
	groups := make([]DateGroup[T], 0)
	for _, l := range logs {
		i, ok := index[l.LogDate()]
		if !ok {
			i = len(groups)
			index[l.LogDate()] = i
			groups = append(groups, DateGroup[T]{Date: l.LogDate()})
		}
		groups[i].Logs = append(groups[i].Logs, l)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	for i := range groups {
		sortNewestFirst(groups[i].Logs)
	}
	return groups
}

type DaySummary struct {
	Date     string  `json:"date"`
	Total    float64 `json:"total"`
	Progress float64 `json:"progress"`
	GoalMet  bool    `json:"goalMet"`
}

type HistorySummary struct {
	Days         []DaySummary `json:"days"`
	Total        float64      `json:"total"`
	DailyAverage float64      `json:"dailyAverage"`
	DaysGoalMet  int          `json:"daysGoalMet"`
}

// Summarize computes the per-day totals shown on a history page
func Summarize[T Measured](logs []T, goal float64) HistorySummary {
	totals := IndexTotals(logs)

	summary := HistorySummary{Days: make([]DaySummary, 0, len(totals))}
	for _, date := range totals.Dates() {
		total := totals.Get(date)
		met := goal > 0 && total >= goal
		summary.Days = append(summary.Days, DaySummary{
			Date:     date,
			Total:    total,
			Progress: Progress(total, goal),
			GoalMet:  met,
		})
		summary.Total += total
		if met {
			summary.DaysGoalMet++
		}
	}
	if len(summary.Days) > 0 {
		summary.DailyAverage = summary.Total / float64(len(summary.Days))
	}
	return summary
}

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MacroTotals sums the macros of every meal on date
func MacroTotals(meals []models.MealLog, date string) Macros {
	var m Macros
	for _, meal := range meals {
		if meal.Date != date {
			continue
		}
		m.Calories += meal.Calories
		m.Protein += meal.Protein
		m.Carbs += meal.Carbs
		m.Fats += meal.Fats
	}
	return m
}

type WorkoutStats struct {
	Sessions      int     `json:"sessions"`
	TotalDuration int     `json:"totalDuration"`
	CompletedSets int     `json:"completedSets"`
	Volume        float64 `json:"volume"`
}

// SummarizeWorkouts aggregates completed sessions. Volume is reps x weight
// over completed sets.
func SummarizeWorkouts(sessions []models.WorkoutSession) WorkoutStats {
	stats := WorkoutStats{Sessions: len(sessions)}
	for _, s := range sessions {
		if s.Duration != nil {
			stats.TotalDuration += *s.Duration
		}
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				stats.CompletedSets++
				stats.Volume += float64(set.Reps) * set.Weight
			}
		}
	}
	return stats
}

func sortByDate(logs []models.GymLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})
}
