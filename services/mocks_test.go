package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gym-tracker/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockRepository is a mock implementation of every repository interface
type MockRepository struct {
	mock.Mock
	Updated []models.UserSettings
}

var (
	_ IntakeRepository  = (*MockRepository)(nil)
	_ GymRepository     = (*MockRepository)(nil)
	_ WorkoutRepository = (*MockRepository)(nil)
	_ ProfileRepository = (*MockRepository)(nil)
)

func (m *MockRepository) ListWaterLogs() ([]models.WaterLog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WaterLog), args.Error(1)
}

func (m *MockRepository) AppendWaterLog(log models.WaterLog) (models.WaterLog, error) {
	args := m.Called(log)
	return args.Get(0).(models.WaterLog), args.Error(1)
}

func (m *MockRepository) ListProteinLogs() ([]models.ProteinLog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProteinLog), args.Error(1)
}

func (m *MockRepository) AppendProteinLog(log models.ProteinLog) (models.ProteinLog, error) {
	args := m.Called(log)
	return args.Get(0).(models.ProteinLog), args.Error(1)
}

func (m *MockRepository) ListMealLogs() ([]models.MealLog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealLog), args.Error(1)
}

func (m *MockRepository) AppendMealLog(log models.MealLog) (models.MealLog, error) {
	args := m.Called(log)
	return args.Get(0).(models.MealLog), args.Error(1)
}

func (m *MockRepository) ListGymLogs() ([]models.GymLog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GymLog), args.Error(1)
}

func (m *MockRepository) MarkAttendance(date string, attended bool, notes *string) (models.GymLog, error) {
	args := m.Called(date, attended, notes)
	return args.Get(0).(models.GymLog), args.Error(1)
}

func (m *MockRepository) ListWorkoutTemplates() ([]models.WorkoutTemplate, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkoutTemplate), args.Error(1)
}

func (m *MockRepository) GetWorkoutTemplate(id string) (*models.WorkoutTemplate, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutTemplate), args.Error(1)
}

// UpdateWorkoutTemplate runs mutate against the template returned by the
// expectation so tests can inspect the result
func (m *MockRepository) UpdateWorkoutTemplate(id string, mutate func(*models.WorkoutTemplate) error) (models.WorkoutTemplate, error) {
	args := m.Called(id)
	if err := args.Error(1); err != nil {
		return models.WorkoutTemplate{}, err
	}
	t := args.Get(0).(models.WorkoutTemplate)
	t.Exercises = append([]models.Exercise{}, t.Exercises...)
	if err := mutate(&t); err != nil {
		return models.WorkoutTemplate{}, err
	}
	return t, nil
}

func (m *MockRepository) ListWorkoutSessions() ([]models.WorkoutSession, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkoutSession), args.Error(1)
}

func (m *MockRepository) AppendWorkoutSession(session models.WorkoutSession) (models.WorkoutSession, error) {
	args := m.Called(session)
	return args.Get(0).(models.WorkoutSession), args.Error(1)
}

func (m *MockRepository) GetProfile() (*models.UserProfile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockRepository) SaveProfile(profile models.UserProfile) (models.UserProfile, error) {
	args := m.Called(profile)
	return args.Get(0).(models.UserProfile), args.Error(1)
}

func (m *MockRepository) GetSettings() (models.UserSettings, error) {
	args := m.Called()
	return args.Get(0).(models.UserSettings), args.Error(1)
}

func (m *MockRepository) SaveSettings(settings models.UserSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

// UpdateSettings applies mutate to the settings the expectation returns and
// keeps the result in Updated
func (m *MockRepository) UpdateSettings(mutate func(*models.UserSettings) error) (models.UserSettings, error) {
	args := m.Called()
	if err := args.Error(1); err != nil {
		return models.UserSettings{}, err
	}
	settings := args.Get(0).(models.UserSettings)
	if err := mutate(&settings); err != nil {
		return models.UserSettings{}, err
	}
	m.Updated = append(m.Updated, settings)
	return settings, nil
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

var _ Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) RequestPermission(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockNotifier) ScheduleWeeklyReminder(ctx context.Context, weekdays []time.Weekday, hour, minute int, message string) bool {
	args := m.Called(ctx, weekdays, hour, minute, message)
	return args.Bool(0)
}

func (m *MockNotifier) CancelWeeklyReminder(ctx context.Context, weekdays []time.Weekday) {
	m.Called(ctx, weekdays)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

var _ EventPublisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(e models.Event) {
	m.Called(e)
}

// MockReminderSyncer is a mock implementation of ReminderSyncer
type MockReminderSyncer struct {
	mock.Mock
}

var _ ReminderSyncer = (*MockReminderSyncer)(nil)

func (m *MockReminderSyncer) SyncReminders(ctx context.Context, enabled bool) error {
	args := m.Called(ctx, enabled)
	return args.Error(0)
}

// ==================== HELPERS ====================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock is 2024-03-18 09:30 UTC, a Monday
func fixedClock() Clock {
	return func() time.Time {
		return time.Date(2024, 3, 18, 9, 30, 0, 0, time.UTC)
	}
}
