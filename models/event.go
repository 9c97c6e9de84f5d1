package models

import "time"

type EventKind string

const (
	EventGoalReached      EventKind = "goal.reached"
	EventReminderFired    EventKind = "reminder.fired"
	EventWorkoutCompleted EventKind = "workout.completed"
)

// Event is pushed to the UI shell (toasts, local notifications)
type Event struct {
	Kind    EventKind `json:"kind"`
	Metric  string    `json:"metric,omitempty"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
