package services

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"gym-tracker/metrics"
	"gym-tracker/models"
)

const (
	MetricWater    = "water"
	MetricProtein  = "protein"
	MetricCalories = "calories"
)

// goalMessages are the toast texts shown when a daily goal is first reached
var goalMessages = map[string][2]string{
	MetricWater:    {"Daily goal reached! 🎉", "Great job staying hydrated!"},
	MetricProtein:  {"Daily goal reached! 🎯", "Excellent protein intake today!"},
	MetricCalories: {"Daily goal reached! 🔥", "You've hit your calorie target for today!"},
}

// IntakeResult is returned after logging water, protein or a meal
type IntakeResult[T any] struct {
	Log         T       `json:"log"`
	Message     string  `json:"message"`
	Total       float64 `json:"total"`
	Goal        float64 `json:"goal"`
	Progress    float64 `json:"progress"`
	Remaining   float64 `json:"remaining"`
	GoalReached bool    `json:"goalReached"`
}

type MetricProgress struct {
	Current   float64 `json:"current"`
	Goal      float64 `json:"goal"`
	Progress  float64 `json:"progress"`
	Remaining float64 `json:"remaining"`
}

type Dashboard struct {
	Date     string              `json:"date"`
	Water    MetricProgress      `json:"water"`
	Protein  MetricProgress      `json:"protein"`
	Calories MetricProgress      `json:"calories"`
	Macros   metrics.Macros      `json:"macros"`
	WaterLog []models.WaterLog   `json:"waterLogs"`
	Proteins []models.ProteinLog `json:"proteinLogs"`
	Meals    []models.MealLog    `json:"mealLogs"`
	Warning  string              `json:"warning,omitempty"`
}

// History backs the water, protein and calorie history pages
type History[T metrics.Entry] struct {
	Goal    float64                `json:"goal"`
	Groups  []metrics.DateGroup[T] `json:"groups"`
	Summary metrics.HistorySummary `json:"summary"`
	Warning string                 `json:"warning,omitempty"`
}

// IntakeService logs water, protein and meals against the daily goals
type IntakeService struct {
	repo   IntakeRepository
	events EventPublisher
	clock  Clock
	logger *slog.Logger
	mu     sync.Mutex
}

// NewIntakeService creates a new intake service
func NewIntakeService(repo IntakeRepository, events EventPublisher, clock Clock, logger *slog.Logger) *IntakeService {
	return &IntakeService{
		repo:   repo,
		events: events,
		clock:  clock,
		logger: logger,
	}
}

// LogWater records amount ml for today
func (s *IntakeService) LogWater(amount float64) (*IntakeResult[models.WaterLog], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	entry := models.WaterLog{Amount: amount, Date: s.clock.Today(), Timestamp: s.clock()}

	res, err := record(s, MetricWater, settings.Goals.Water, s.repo.ListWaterLogs, s.repo.AppendWaterLog, entry)
	if err != nil {
		return nil, err
	}
	res.Message = fmt.Sprintf("Added %sml to your daily intake", formatAmount(amount))
	return res, nil
}

// LogProtein records amount grams for today
func (s *IntakeService) LogProtein(amount float64, source string) (*IntakeResult[models.ProteinLog], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.logProtein(amount, source)
}

// LogProteinFromFood records quantity units of a food from the reference table
func (s *IntakeService) LogProteinFromFood(foodID string, quantity float64) (*IntakeResult[models.ProteinLog], error) {
	food, ok := models.FindFood(foodID)
	if !ok {
		return nil, ErrUnknownFood
	}
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	amount := math.Round(food.Protein*quantity*10) / 10
	return s.logProtein(amount, food.Name)
}

func (s *IntakeService) logProtein(amount float64, source string) (*IntakeResult[models.ProteinLog], error) {
	settings := s.settings()
	entry := models.ProteinLog{Amount: amount, Source: source, Date: s.clock.Today(), Timestamp: s.clock()}

	res, err := record(s, MetricProtein, settings.Goals.Protein, s.repo.ListProteinLogs, s.repo.AppendProteinLog, entry)
	if err != nil {
		return nil, err
	}
	if source != "" {
		res.Message = fmt.Sprintf("Added %sg from %s", formatAmount(amount), source)
	} else {
		res.Message = fmt.Sprintf("Added %sg of protein", formatAmount(amount))
	}
	return res, nil
}

// LogMeal records a meal for today; its calories count towards the calorie goal
func (s *IntakeService) LogMeal(meal models.MealLog) (*IntakeResult[models.MealLog], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	meal.ID = ""
	meal.Date = s.clock.Today()
	meal.Timestamp = s.clock()

	res, err := record(s, MetricCalories, settings.Goals.Calories, s.repo.ListMealLogs, s.repo.AppendMealLog, meal)
	if err != nil {
		return nil, err
	}
	res.Message = fmt.Sprintf("Added %s (%s cal)", meal.Name, formatAmount(meal.Calories))
	return res, nil
}

// record appends entry and publishes a goal event when the append moves
// today's total across goal. Callers hold s.mu.
func record[T metrics.Measured](s *IntakeService, metric string, goal float64, list func() ([]T, error), add func(T) (T, error), entry T) (*IntakeResult[T], error) {
	logs, err := list()
	if err != nil {
		s.logger.Warn("Failed to read logs, using empty history", "metric", metric, "error", err)
	}
	previous := metrics.DailyTotal(logs, entry.LogDate())

	stored, err := add(entry)
	if err != nil {
		return nil, err
	}

	total := previous + stored.Quantity()
	res := &IntakeResult[T]{
		Log:         stored,
		Total:       total,
		Goal:        goal,
		Progress:    metrics.Progress(total, goal),
		Remaining:   metrics.Remaining(total, goal),
		GoalReached: metrics.GoalCrossed(previous, stored.Quantity(), goal),
	}

	if res.GoalReached {
		text := goalMessages[metric]
		s.events.Publish(models.Event{
			Kind:    models.EventGoalReached,
			Metric:  metric,
			Title:   text[0],
			Message: text[1],
			At:      stored.LogTime(),
		})
		s.logger.Info("Daily goal reached", "metric", metric, "total", total, "goal", goal)
	}

	return res, nil
}

// Dashboard summarizes date against the goals. An empty date means today.
func (s *IntakeService) Dashboard(date string) (*Dashboard, error) {
	if date == "" {
		date = s.clock.Today()
	}

	var warning string
	settings, err := s.repo.GetSettings()
	if err != nil {
		warning = s.warn("settings", err)
		settings = models.DefaultSettings()
	}
	water, err := s.repo.ListWaterLogs()
	if err != nil {
		warning = s.warn(MetricWater, err)
	}
	proteins, err := s.repo.ListProteinLogs()
	if err != nil {
		warning = s.warn(MetricProtein, err)
	}
	meals, err := s.repo.ListMealLogs()
	if err != nil {
		warning = s.warn(MetricCalories, err)
	}

	return &Dashboard{
		Date:     date,
		Water:    progressFor(metrics.DailyTotal(water, date), settings.Goals.Water),
		Protein:  progressFor(metrics.DailyTotal(proteins, date), settings.Goals.Protein),
		Calories: progressFor(metrics.DailyTotal(meals, date), settings.Goals.Calories),
		Macros:   metrics.MacroTotals(meals, date),
		WaterLog: metrics.LogsForDate(water, date),
		Proteins: metrics.LogsForDate(proteins, date),
		Meals:    metrics.LogsForDate(meals, date),
		Warning:  warning,
	}, nil
}

func (s *IntakeService) WaterHistory() (*History[models.WaterLog], error) {
	settings := s.settings()
	logs, err := s.repo.ListWaterLogs()
	return buildHistory(s, MetricWater, logs, err, settings.Goals.Water), nil
}

func (s *IntakeService) ProteinHistory() (*History[models.ProteinLog], error) {
	settings := s.settings()
	logs, err := s.repo.ListProteinLogs()
	return buildHistory(s, MetricProtein, logs, err, settings.Goals.Protein), nil
}

func (s *IntakeService) MealHistory() (*History[models.MealLog], error) {
	settings := s.settings()
	logs, err := s.repo.ListMealLogs()
	return buildHistory(s, MetricCalories, logs, err, settings.Goals.Calories), nil
}

func buildHistory[T metrics.Measured](s *IntakeService, metric string, logs []T, readErr error, goal float64) *History[T] {
	h := &History[T]{
		Goal:    goal,
		Groups:  metrics.GroupByDate(logs),
		Summary: metrics.Summarize(logs, goal),
	}
	if readErr != nil {
		h.Warning = s.warn(metric, readErr)
	}
	return h
}

// settings reads the goals, falling back to defaults when storage fails
func (s *IntakeService) settings() models.UserSettings {
	settings, err := s.repo.GetSettings()
	if err != nil {
		s.logger.Warn("Failed to read settings, using defaults", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

func (s *IntakeService) warn(what string, err error) string {
	return storageWarning(s.logger, what, err)
}

func progressFor(current, goal float64) MetricProgress {
	return MetricProgress{
		Current:   current,
		Goal:      goal,
		Progress:  metrics.Progress(current, goal),
		Remaining: metrics.Remaining(current, goal),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
