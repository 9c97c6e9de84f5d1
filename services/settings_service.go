package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gym-tracker/models"
)

// ReminderSchedule is when gym reminders fire
type ReminderSchedule struct {
	Weekdays []time.Weekday
	Hour     int
	Minute   int
	Message  string
}

// GymWeekdays are Monday through Saturday; Sunday is the rest day
var GymWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

type SaveResult struct {
	Settings        models.UserSettings `json:"settings"`
	ReminderWarning string              `json:"reminderWarning,omitempty"`
}

// SettingsService persists settings and keeps gym reminders in step with them
type SettingsService struct {
	repo     SettingsRepository
	notifier Notifier
	schedule ReminderSchedule
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo SettingsRepository, notifier Notifier, schedule ReminderSchedule, logger *slog.Logger) *SettingsService {
	if len(schedule.Weekdays) == 0 {
		schedule.Weekdays = GymWeekdays
	}
	return &SettingsService{
		repo:     repo,
		notifier: notifier,
		schedule: schedule,
		logger:   logger,
	}
}

// Get returns the settings, or the defaults when storage is unreadable
func (ss *SettingsService) Get() (models.UserSettings, error) {
	settings, err := ss.repo.GetSettings()
	if err != nil {
		ss.logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

// Save persists settings. The notifier is only called when the gym flag
// changes, and its failure does not undo the save.
func (ss *SettingsService) Save(ctx context.Context, settings models.UserSettings) (*SaveResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	previous, _ := ss.Get()

	if err := ss.repo.SaveSettings(settings); err != nil {
		return nil, err
	}

	result := &SaveResult{Settings: settings}
	if previous.Notifications.Gym != settings.Notifications.Gym {
		if err := ss.SyncReminders(ctx, settings.Notifications.Gym); err != nil {
			result.ReminderWarning = err.Error()
		}
	}
	return result, nil
}

// SyncReminders schedules the gym reminders when enabled and cancels them
// otherwise. It does not retry.
func (ss *SettingsService) SyncReminders(ctx context.Context, enabled bool) error {
	if !enabled {
		ss.notifier.CancelWeeklyReminder(ctx, ss.schedule.Weekdays)
		ss.logger.Info("Gym reminders cancelled")
		return nil
	}

	if !ss.notifier.RequestPermission(ctx) {
		ss.logger.Warn("Gym reminders not scheduled", "error", ErrPermissionDenied)
		return ErrPermissionDenied
	}

	ok := ss.notifier.ScheduleWeeklyReminder(ctx, ss.schedule.Weekdays, ss.schedule.Hour, ss.schedule.Minute, ss.schedule.Message)
	if !ok {
		ss.logger.Warn("Gym reminders not scheduled", "error", ErrReminderNotScheduled)
		return ErrReminderNotScheduled
	}

	ss.logger.Info("Gym reminders scheduled", "hour", ss.schedule.Hour, "minute", ss.schedule.Minute)
	return nil
}
