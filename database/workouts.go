package database

import (
	"gym-tracker/models"
	"gym-tracker/storage"
)

// ==================== TEMPLATES ====================

// ListWorkoutTemplates returns the weekly templates, seeding the default
// split when nothing has been saved yet
func (r *Repository) ListWorkoutTemplates() ([]models.WorkoutTemplate, error) {
	templates, err := storage.Get(r.store, storage.KeyWorkoutTemplates, models.DefaultWorkoutTemplates())
	if templates == nil {
		templates = []models.WorkoutTemplate{}
	}
	return templates, err
}

func (r *Repository) GetWorkoutTemplate(id string) (*models.WorkoutTemplate, error) {
	templates, err := r.ListWorkoutTemplates()
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateWorkoutTemplate applies mutate to a copy of the template with the
// given id and persists the whole collection. Nothing is written when the
// template is missing, mutate fails or the result does not validate.
func (r *Repository) UpdateWorkoutTemplate(id string, mutate func(*models.WorkoutTemplate) error) (models.WorkoutTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.ListWorkoutTemplates()
	if err != nil {
		return models.WorkoutTemplate{}, err
	}

	idx := -1
	for i := range templates {
		if templates[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.WorkoutTemplate{}, ErrNotFound
	}

	updated := templates[idx]
	updated.MuscleGroups = append([]string(nil), updated.MuscleGroups...)
	updated.Exercises = append([]models.Exercise{}, updated.Exercises...)

	if err := mutate(&updated); err != nil {
		return models.WorkoutTemplate{}, err
	}
	updated.ID = id

	if err := r.validate.Validate(updated); err != nil {
		return models.WorkoutTemplate{}, err
	}

	templates[idx] = updated
	if err := storage.Set(r.store, storage.KeyWorkoutTemplates, templates); err != nil {
		return models.WorkoutTemplate{}, err
	}
	return updated, nil
}

// ==================== SESSIONS ====================

func (r *Repository) ListWorkoutSessions() ([]models.WorkoutSession, error) {
	return loadList[models.WorkoutSession](r, storage.KeyWorkoutSessions)
}

func (r *Repository) AppendWorkoutSession(session models.WorkoutSession) (models.WorkoutSession, error) {
	r.stamp(&session.ID, &session.Timestamp, &session.Date)
	if session.Exercises == nil {
		session.Exercises = []models.CompletedExercise{}
	}
	return appendItem(r, storage.KeyWorkoutSessions, session)
}
