package services

import "errors"

// Common service-level errors
var (
	// Workout session errors
	ErrNoActiveSession   = errors.New("no workout in progress")
	ErrSessionInProgress = errors.New("a workout is already in progress")
	ErrEmptyTemplate     = errors.New("workout has no exercises")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrSetOutOfRange     = errors.New("set index out of range")

	// Intake errors
	ErrUnknownFood = errors.New("unknown food")

	// Profile errors
	ErrProfileRequired = errors.New("profile not set up")

	// Reminder errors
	ErrPermissionDenied     = errors.New("notification permission denied")
	ErrReminderNotScheduled = errors.New("reminder could not be scheduled")
)
