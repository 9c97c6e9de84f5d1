package services

import (
	"errors"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"gym-tracker/database"
	"gym-tracker/metrics"
	"gym-tracker/models"
)

const (
	defaultExerciseName = "New Exercise"
	defaultExerciseSets = 3
	defaultExerciseReps = "8-12"
)

// ActiveSession is the workout currently being performed
type ActiveSession struct {
	Session   models.WorkoutSession `json:"session"`
	StartedAt time.Time             `json:"startedAt"`
}

type WorkoutHistory struct {
	Groups  []metrics.DateGroup[models.WorkoutSession] `json:"groups"`
	Stats   metrics.WorkoutStats                       `json:"stats"`
	Warning string                                     `json:"warning,omitempty"`
}

type TemplateList struct {
	Templates []models.WorkoutTemplate `json:"templates"`
	Warning   string                   `json:"warning,omitempty"`
}

// TodayWorkout is today's template. Rest days have no exercises.
type TodayWorkout struct {
	Template models.WorkoutTemplate `json:"template"`
	Rest     bool                   `json:"rest"`
	Warning  string                 `json:"warning,omitempty"`
}

type RecentWorkouts struct {
	Sessions []models.WorkoutSession `json:"sessions"`
	Warning  string                  `json:"warning,omitempty"`
}

// WorkoutService owns the workout templates and the in-progress session.
// The session lives only in memory until Complete appends it to history.
type WorkoutService struct {
	repo   WorkoutRepository
	events EventPublisher
	clock  Clock
	logger *slog.Logger
	mu     sync.Mutex
	active *ActiveSession
}

// NewWorkoutService creates a new workout service
func NewWorkoutService(repo WorkoutRepository, events EventPublisher, clock Clock, logger *slog.Logger) *WorkoutService {
	return &WorkoutService{
		repo:   repo,
		events: events,
		clock:  clock,
		logger: logger,
	}
}

// ==================== TEMPLATES ====================

// Templates returns the weekly templates. When they cannot be read the
// default split is shown with a warning.
func (ws *WorkoutService) Templates() (*TemplateList, error) {
	templates, warning, err := ws.loadTemplates()
	if err != nil {
		return nil, err
	}
	return &TemplateList{Templates: templates, Warning: warning}, nil
}

// TodayTemplate returns the template scheduled for today's weekday
func (ws *WorkoutService) TodayTemplate() (*TodayWorkout, error) {
	templates, warning, err := ws.loadTemplates()
	if err != nil {
		return nil, err
	}

	day := ws.clock().Weekday().String()
	for _, t := range templates {
		if t.Day == day {
			return &TodayWorkout{
				Template: t,
				Rest:     len(t.Exercises) == 0,
				Warning:  warning,
			}, nil
		}
	}
	return nil, database.ErrNotFound
}

func (ws *WorkoutService) loadTemplates() ([]models.WorkoutTemplate, string, error) {
	templates, err := ws.repo.ListWorkoutTemplates()
	warning, err := readFallback(ws.logger, "workout", err)
	if err != nil {
		return nil, "", err
	}
	if warning != "" && len(templates) == 0 {
		templates = models.DefaultWorkoutTemplates()
	}
	if templates == nil {
		templates = []models.WorkoutTemplate{}
	}
	return templates, warning, nil
}

// AddExercise appends a default exercise to the template
func (ws *WorkoutService) AddExercise(templateID string) (models.Exercise, error) {
	exercise := models.Exercise{
		ID:   models.NewID(),
		Name: defaultExerciseName,
		Sets: defaultExerciseSets,
		Reps: defaultExerciseReps,
	}

	_, err := ws.repo.UpdateWorkoutTemplate(templateID, func(t *models.WorkoutTemplate) error {
		t.Exercises = append(t.Exercises, exercise)
		return nil
	})
	if err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

// UpdateExercise applies the non-nil fields of patch to one exercise
func (ws *WorkoutService) UpdateExercise(templateID, exerciseID string, patch models.ExercisePatch) (models.Exercise, error) {
	var updated models.Exercise

	_, err := ws.repo.UpdateWorkoutTemplate(templateID, func(t *models.WorkoutTemplate) error {
		for i := range t.Exercises {
			if t.Exercises[i].ID != exerciseID {
				continue
			}
			ex := &t.Exercises[i]
			if patch.Name != nil {
				ex.Name = *patch.Name
			}
			if patch.Sets != nil {
				ex.Sets = *patch.Sets
			}
			if patch.Reps != nil {
				ex.Reps = *patch.Reps
			}
			if patch.Weight != nil {
				w := *patch.Weight
				ex.Weight = &w
			}
			if patch.Notes != nil {
				n := *patch.Notes
				ex.Notes = &n
			}
			updated = *ex
			return nil
		}
		return ErrExerciseNotFound
	})
	if err != nil {
		return models.Exercise{}, err
	}
	return updated, nil
}

// RemoveExercise deletes one exercise from the template
func (ws *WorkoutService) RemoveExercise(templateID, exerciseID string) error {
	_, err := ws.repo.UpdateWorkoutTemplate(templateID, func(t *models.WorkoutTemplate) error {
		for i := range t.Exercises {
			if t.Exercises[i].ID == exerciseID {
				t.Exercises = append(t.Exercises[:i], t.Exercises[i+1:]...)
				return nil
			}
		}
		return ErrExerciseNotFound
	})
	return err
}

// ==================== SESSION ====================

// Start snapshots the template into a new in-progress session with every
// set zeroed
func (ws *WorkoutService) Start(templateID string) (*ActiveSession, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.active != nil {
		return nil, ErrSessionInProgress
	}

	template, err := ws.repo.GetWorkoutTemplate(templateID)
	if err != nil {
		return nil, err
	}
	if len(template.Exercises) == 0 {
		return nil, ErrEmptyTemplate
	}

	now := ws.clock()
	session := models.WorkoutSession{
		ID:         models.NewID(),
		TemplateID: template.ID,
		Date:       now.Format(models.DateLayout),
		Exercises:  make([]models.CompletedExercise, 0, len(template.Exercises)),
		Timestamp:  now,
	}
	for _, ex := range template.Exercises {
		session.Exercises = append(session.Exercises, models.CompletedExercise{
			ExerciseID: ex.ID,
			Name:       ex.Name,
			Sets:       make([]models.CompletedSet, ex.Sets),
		})
	}

	ws.active = &ActiveSession{Session: session, StartedAt: now}
	ws.logger.Info("Workout started", "template", template.ID, "exercises", len(session.Exercises))

	return ws.snapshot(), nil
}

// Active returns a copy of the in-progress session, nil when there is none
func (ws *WorkoutService) Active() *ActiveSession {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.snapshot()
}

// Update applies mutate to a copy of the in-progress session and keeps the
// result only when mutate succeeds. Nothing is persisted.
func (ws *WorkoutService) Update(mutate func(*models.WorkoutSession) error) (*ActiveSession, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.active == nil {
		return nil, ErrNoActiveSession
	}

	draft := ws.active.Session.Clone()
	if err := mutate(&draft); err != nil {
		return nil, err
	}
	ws.active.Session = draft

	return ws.snapshot(), nil
}

// UpdateSet records reps and weight for one set
func (ws *WorkoutService) UpdateSet(patch models.SetPatch) (*ActiveSession, error) {
	return ws.Update(func(s *models.WorkoutSession) error {
		set, err := findSet(s, patch.ExerciseID, patch.SetIndex)
		if err != nil {
			return err
		}
		if patch.Reps != nil {
			set.Reps = *patch.Reps
		}
		if patch.Weight != nil {
			set.Weight = *patch.Weight
		}
		return nil
	})
}

// ToggleSet flips the completed flag of one set
func (ws *WorkoutService) ToggleSet(exerciseID string, setIndex int) (*ActiveSession, error) {
	return ws.Update(func(s *models.WorkoutSession) error {
		set, err := findSet(s, exerciseID, setIndex)
		if err != nil {
			return err
		}
		set.Completed = !set.Completed
		return nil
	})
}

// Complete appends the in-progress session to history and clears it
func (ws *WorkoutService) Complete(notes *string) (models.WorkoutSession, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.active == nil {
		return models.WorkoutSession{}, ErrNoActiveSession
	}

	session := ws.active.Session.Clone()
	minutes := int(math.Round(ws.clock().Sub(ws.active.StartedAt).Minutes()))
	session.Duration = &minutes
	if notes != nil {
		n := *notes
		session.Notes = &n
	}

	stored, err := ws.repo.AppendWorkoutSession(session)
	if err != nil {
		// keep the session so the user can retry
		return models.WorkoutSession{}, err
	}
	ws.active = nil

	ws.events.Publish(models.Event{
		Kind:    models.EventWorkoutCompleted,
		Title:   "Workout completed! 💪",
		Message: "Great job on finishing your session!",
		At:      ws.clock(),
	})
	ws.logger.Info("Workout completed", "template", stored.TemplateID, "duration", minutes)

	return stored, nil
}

// Abandon drops the in-progress session without saving it. Reports
// whether there was one.
func (ws *WorkoutService) Abandon() bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.active == nil {
		return false
	}
	ws.logger.Info("Workout abandoned", "template", ws.active.Session.TemplateID)
	ws.active = nil
	return true
}

// ==================== HISTORY ====================

// History groups completed sessions by date, newest first
func (ws *WorkoutService) History() (*WorkoutHistory, error) {
	sessions, warning, err := ws.loadSessions()
	if err != nil {
		return nil, err
	}
	return &WorkoutHistory{
		Groups:  metrics.GroupByDate(sessions),
		Stats:   metrics.SummarizeWorkouts(sessions),
		Warning: warning,
	}, nil
}

// Recent returns the last n completed sessions, newest first
func (ws *WorkoutService) Recent(n int) (*RecentWorkouts, error) {
	sessions, warning, err := ws.loadSessions()
	if err != nil {
		return nil, err
	}

	sessions = append(make([]models.WorkoutSession, 0, len(sessions)), sessions...)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	if n > 0 && len(sessions) > n {
		sessions = sessions[:n]
	}
	return &RecentWorkouts{Sessions: sessions, Warning: warning}, nil
}

func (ws *WorkoutService) loadSessions() ([]models.WorkoutSession, string, error) {
	sessions, err := ws.repo.ListWorkoutSessions()
	warning, err := readFallback(ws.logger, "workout history", err)
	if err != nil {
		return nil, "", err
	}
	if warning != "" {
		sessions = nil
	}
	return sessions, warning, nil
}

func (ws *WorkoutService) snapshot() *ActiveSession {
	if ws.active == nil {
		return nil
	}
	return &ActiveSession{
		Session:   ws.active.Session.Clone(),
		StartedAt: ws.active.StartedAt,
	}
}

func findSet(s *models.WorkoutSession, exerciseID string, setIndex int) (*models.CompletedSet, error) {
	for i := range s.Exercises {
		if s.Exercises[i].ExerciseID != exerciseID {
			continue
		}
		if setIndex < 0 || setIndex >= len(s.Exercises[i].Sets) {
			return nil, ErrSetOutOfRange
		}
		return &s.Exercises[i].Sets[setIndex], nil
	}
	return nil, ErrExerciseNotFound
}

// IsStateError reports whether err is a workout state conflict
func IsStateError(err error) bool {
	return errors.Is(err, ErrNoActiveSession) ||
		errors.Is(err, ErrSessionInProgress) ||
		errors.Is(err, ErrEmptyTemplate)
}
