// Package metrics holds the pure calculations behind the dashboard,
// history pages and goal notifications. Nothing here touches storage.
package metrics

import (
	"math"
	"sort"
	"time"
)

// Entry is anything logged against a calendar date
type Entry interface {
	LogDate() string
	LogTime() time.Time
}

// Measured is an entry that contributes a quantity to a daily total
type Measured interface {
	Entry
	Quantity() float64
}

// DailyTotal sums the quantity of every log on date
func DailyTotal[T Measured](logs []T, date string) float64 {
	var total float64
	for _, l := range logs {
		if l.LogDate() == date {
			total += l.Quantity()
		}
	}
	return total
}

// LogsForDate returns the logs on date, newest first
func LogsForDate[T Entry](logs []T, date string) []T {
	out := make([]T, 0)
	for _, l := range logs {
		if l.LogDate() == date {
			out = append(out, l)
		}
	}
	sortNewestFirst(out)
	return out
}

// Ratio is current/goal without clamping, 0 when there is no goal
func Ratio(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return current / goal
}

// Progress is the percentage of goal reached, clamped to [0, 100]
func Progress(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Max(0, math.Min(current/goal, 1.0)) * 100
}

func Remaining(current, goal float64) float64 {
	return math.Max(0, goal-current)
}

// GoalCrossed reports whether adding added to previous moves the total
// from below goal to at or above it
func GoalCrossed(previous, added, goal float64) bool {
	if goal <= 0 {
		return false
	}
	return previous < goal && previous+added >= goal
}

func sortNewestFirst[T Entry](logs []T) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].LogTime().After(logs[j].LogTime())
	})
}

// roundHalfUp rounds to the nearest integer, halves away from zero for positives
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
