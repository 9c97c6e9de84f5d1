package setup

import (
	"log/slog"

	"gym-tracker/app"
	"gym-tracker/config"
	"gym-tracker/database"
	"gym-tracker/services"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	application := app.New(db, app.Options{
		Location: loc,
		Reminder: services.ReminderSchedule{
			Weekdays: services.GymWeekdays,
			Hour:     cfg.Reminder.Hour,
			Minute:   cfg.Reminder.Minute,
			Message:  cfg.Reminder.Message,
		},
		ReminderTitle:        cfg.Reminder.Title,
		ReminderTick:         cfg.Reminder.Tick,
		ReminderGrace:        cfg.Reminder.Grace,
		NotificationsGranted: cfg.Reminder.NotificationsGranted,
	}, logger)
	logger.Info("application initialized", "timezone", loc.String())

	// Start reminder worker for gym reminders
	application.Worker.Start()
	logger.Info("reminder worker started", "tick", cfg.Reminder.Tick)

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil {
		application.Worker.Stop()
		logger.Info("reminder worker stopped")

		application.Events.Close()
		logger.Info("event streams closed")
	}

	// Close database
	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
