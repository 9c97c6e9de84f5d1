package services

import (
	"context"
	"time"

	"gym-tracker/models"
)

// IntakeRepository defines data access for water, protein and meal logs
type IntakeRepository interface {
	ListWaterLogs() ([]models.WaterLog, error)
	AppendWaterLog(log models.WaterLog) (models.WaterLog, error)
	ListProteinLogs() ([]models.ProteinLog, error)
	AppendProteinLog(log models.ProteinLog) (models.ProteinLog, error)
	ListMealLogs() ([]models.MealLog, error)
	AppendMealLog(log models.MealLog) (models.MealLog, error)
	GetSettings() (models.UserSettings, error)
}

// GymRepository defines data access for gym attendance
type GymRepository interface {
	ListGymLogs() ([]models.GymLog, error)
	MarkAttendance(date string, attended bool, notes *string) (models.GymLog, error)
}

// WorkoutRepository defines data access for templates and completed sessions
type WorkoutRepository interface {
	ListWorkoutTemplates() ([]models.WorkoutTemplate, error)
	GetWorkoutTemplate(id string) (*models.WorkoutTemplate, error)
	UpdateWorkoutTemplate(id string, mutate func(*models.WorkoutTemplate) error) (models.WorkoutTemplate, error)
	ListWorkoutSessions() ([]models.WorkoutSession, error)
	AppendWorkoutSession(session models.WorkoutSession) (models.WorkoutSession, error)
}

// SettingsRepository defines data access for the settings singleton
type SettingsRepository interface {
	GetSettings() (models.UserSettings, error)
	SaveSettings(settings models.UserSettings) error
}

// ProfileRepository defines data access for the profile singleton
type ProfileRepository interface {
	SettingsRepository
	GetProfile() (*models.UserProfile, error)
	SaveProfile(profile models.UserProfile) (models.UserProfile, error)
	UpdateSettings(mutate func(*models.UserSettings) error) (models.UserSettings, error)
}

// Notifier schedules local reminders. Implemented by the reminders package.
type Notifier interface {
	RequestPermission(ctx context.Context) bool
	ScheduleWeeklyReminder(ctx context.Context, weekdays []time.Weekday, hour, minute int, message string) bool
	CancelWeeklyReminder(ctx context.Context, weekdays []time.Weekday)
}

// EventPublisher receives goal and workout events for the UI
type EventPublisher interface {
	Publish(e models.Event)
}

// ReminderSyncer aligns the reminder schedule with the gym notification flag
type ReminderSyncer interface {
	SyncReminders(ctx context.Context, enabled bool) error
}
