// Package reminders is the local notification collaborator: it keeps the
// weekly reminder schedule in the store and fires due reminders as events.
package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"gym-tracker/storage"
)

// Reminder is one weekly entry. There is at most one per weekday;
// scheduling the same weekday again replaces it.
type Reminder struct {
	ID        string       `json:"id"`
	Weekday   time.Weekday `json:"weekday"`
	Hour      int          `json:"hour"`
	Minute    int          `json:"minute"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	LastFired string       `json:"lastFired,omitempty"`
}

// Scheduler persists weekly reminders under the scheduledReminders key
type Scheduler struct {
	store   storage.Store
	title   string
	granted bool
	mu      sync.Mutex
	logger  *slog.Logger
}

// NewScheduler creates a scheduler. granted is whether the platform allows
// notifications at all; title is shown with every reminder.
func NewScheduler(store storage.Store, title string, granted bool, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:   store,
		title:   title,
		granted: granted,
		logger:  logger,
	}
}

func reminderID(day time.Weekday) string {
	return fmt.Sprintf("weekly-%d", day)
}

// RequestPermission reports whether reminders may be shown
func (s *Scheduler) RequestPermission(ctx context.Context) bool {
	if !s.granted {
		s.logger.Warn("Notification permission denied")
	}
	return s.granted
}

// ScheduleWeeklyReminder sets a reminder at hour:minute on each weekday
func (s *Scheduler) ScheduleWeeklyReminder(ctx context.Context, weekdays []time.Weekday, hour, minute int, message string) bool {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || len(weekdays) == 0 {
		s.logger.Warn("Rejecting reminder with invalid schedule", "hour", hour, "minute", minute, "weekdays", len(weekdays))
		return false
	}
	for _, day := range weekdays {
		if day < time.Sunday || day > time.Saturday {
			s.logger.Warn("Rejecting reminder with invalid weekday", "weekday", int(day))
			return false
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		s.logger.Error("Failed to load reminders", "error", err)
		return false
	}

	kept := removeDays(current, weekdays)
	for _, day := range weekdays {
		kept = append(kept, Reminder{
			ID:      reminderID(day),
			Weekday: day,
			Hour:    hour,
			Minute:  minute,
			Title:   s.title,
			Message: message,
		})
	}

	if err := storage.Set(s.store, storage.KeyScheduledReminders, kept); err != nil {
		s.logger.Error("Failed to save reminders", "error", err)
		return false
	}

	s.logger.Info("Scheduled weekly reminders", "count", len(weekdays), "hour", hour, "minute", minute)
	return true
}

// CancelWeeklyReminder removes the reminders on weekdays
func (s *Scheduler) CancelWeeklyReminder(ctx context.Context, weekdays []time.Weekday) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		s.logger.Error("Failed to load reminders", "error", err)
		return
	}

	if err := storage.Set(s.store, storage.KeyScheduledReminders, removeDays(current, weekdays)); err != nil {
		s.logger.Error("Failed to save reminders", "error", err)
		return
	}

	s.logger.Info("Cancelled weekly reminders", "count", len(weekdays))
}

// List returns the scheduled reminders
func (s *Scheduler) List() ([]Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// markFired records that the reminder with id fired on date
func (s *Scheduler) markFired(id, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	for i := range current {
		if current[i].ID == id {
			current[i].LastFired = date
		}
	}
	return storage.Set(s.store, storage.KeyScheduledReminders, current)
}

func (s *Scheduler) load() ([]Reminder, error) {
	reminders, err := storage.Get(s.store, storage.KeyScheduledReminders, []Reminder{})
	if reminders == nil {
		reminders = []Reminder{}
	}
	return reminders, err
}

func removeDays(reminders []Reminder, weekdays []time.Weekday) []Reminder {
	kept := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if !slices.Contains(weekdays, r.Weekday) {
			kept = append(kept, r)
		}
	}
	return kept
}
