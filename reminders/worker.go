package reminders

import (
	"log/slog"
	"sync"
	"time"

	"gym-tracker/models"
)

// Publisher receives fired reminders
type Publisher interface {
	Publish(models.Event)
}

// Worker checks the schedule on a ticker and publishes reminders that are
// due. A reminder fires at most once per day and is skipped when the
// worker was not running within grace of its time.
type Worker struct {
	scheduler *Scheduler
	publisher Publisher
	interval  time.Duration
	grace     time.Duration
	location  *time.Location
	now       func() time.Time
	running   bool
	mu        sync.Mutex
	stopChan  chan struct{}
	logger    *slog.Logger
}

func NewWorker(scheduler *Scheduler, publisher Publisher, interval, grace time.Duration, location *time.Location, logger *slog.Logger) *Worker {
	if location == nil {
		location = time.Local
	}
	return &Worker{
		scheduler: scheduler,
		publisher: publisher,
		interval:  interval,
		grace:     grace,
		location:  location,
		now:       time.Now,
		logger:    logger,
	}
}

// Start begins the background reminder loop
func (w *Worker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	stop := make(chan struct{})
	w.stopChan = stop
	w.mu.Unlock()

	w.logger.Info("Starting reminder worker", "interval", w.interval)

	go w.run(stop)
}

// Stop halts the loop
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	w.logger.Info("Stopping reminder worker")
	close(w.stopChan)
	w.running = false
}

func (w *Worker) run(stop <-chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start
	w.tick()

	for {
		select {
		case <-ticker.C:
			w.tick()
		case <-stop:
			return
		}
	}
}

// tick fires every due reminder and returns how many fired
func (w *Worker) tick() int {
	now := w.now().In(w.location)
	today := now.Format(models.DateLayout)

	reminders, err := w.scheduler.List()
	if err != nil {
		w.logger.Error("Failed to read reminder schedule", "error", err)
		return 0
	}

	fired := 0
	for _, r := range reminders {
		if !w.due(r, now, today) {
			continue
		}

		if err := w.scheduler.markFired(r.ID, today); err != nil {
			w.logger.Error("Failed to mark reminder fired", "id", r.ID, "error", err)
			continue
		}

		w.publisher.Publish(models.Event{
			Kind:    models.EventReminderFired,
			Metric:  "gym",
			Title:   r.Title,
			Message: r.Message,
			At:      now,
		})
		w.logger.Info("Reminder fired", "id", r.ID, "weekday", r.Weekday.String())
		fired++
	}
	return fired
}

func (w *Worker) due(r Reminder, now time.Time, today string) bool {
	if r.Weekday != now.Weekday() || r.LastFired == today {
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), r.Hour, r.Minute, 0, 0, w.location)
	return !now.Before(at) && now.Sub(at) <= w.grace
}
