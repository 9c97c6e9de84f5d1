package app

import (
	"log/slog"
	"time"

	"gym-tracker/database"
	"gym-tracker/events"
	"gym-tracker/reminders"
	"gym-tracker/services"
	"gym-tracker/storage"
	"gym-tracker/validator"
)

// Options carries the settings needed to build the services
type Options struct {
	Location             *time.Location
	Reminder             services.ReminderSchedule
	ReminderTitle        string
	ReminderTick         time.Duration
	ReminderGrace        time.Duration
	NotificationsGranted bool
}

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Intake    *services.IntakeService
	Gym       *services.GymService
	Workouts  *services.WorkoutService
	Profile   *services.ProfileService
	Settings  *services.SettingsService
	Reminders *reminders.Scheduler
	Worker    *reminders.Worker
	Events    *events.Hub
	Validator *validator.Validator
	Location  *time.Location
	Logger    *slog.Logger

	store storage.Store
}

// keyLister is implemented by stores that can report what they hold
type keyLister interface {
	Keys() (map[string]time.Time, error)
}

// New creates a new App instance with all dependencies on top of store
func New(store storage.Store, opts Options, logger *slog.Logger) *App {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.ReminderTick <= 0 {
		opts.ReminderTick = time.Minute
	}

	v := validator.New()
	repo := database.NewRepository(store, v)
	hub := events.NewHub(logger)
	clock := services.LocalClock(opts.Location)

	scheduler := reminders.NewScheduler(store, opts.ReminderTitle, opts.NotificationsGranted, logger)
	worker := reminders.NewWorker(scheduler, hub, opts.ReminderTick, opts.ReminderGrace, opts.Location, logger)

	settings := services.NewSettingsService(repo, scheduler, opts.Reminder, logger)

	return &App{
		Repo:      repo,
		Intake:    services.NewIntakeService(repo, hub, clock, logger),
		Gym:       services.NewGymService(repo, clock, logger),
		Workouts:  services.NewWorkoutService(repo, hub, clock, logger),
		Profile:   services.NewProfileService(repo, settings, logger),
		Settings:  settings,
		Reminders: scheduler,
		Worker:    worker,
		Events:    hub,
		Validator: v,
		Location:  opts.Location,
		Logger:    logger,
		store:     store,
	}
}

// Collections lists the stored keys with their last update time. A store
// that cannot list its keys reports none.
func (a *App) Collections() (map[string]time.Time, error) {
	lister, ok := a.store.(keyLister)
	if !ok {
		return map[string]time.Time{}, nil
	}
	return lister.Keys()
}

// Today is the current date in the user's timezone
func (a *App) Today() string {
	return services.LocalClock(a.Location).Today()
}
