package database

import (
	"gym-tracker/models"
	"gym-tracker/storage"
)

// GetProfile returns nil when onboarding has not been completed
func (r *Repository) GetProfile() (*models.UserProfile, error) {
	profile, err := storage.Get[*models.UserProfile](r.store, storage.KeyUserProfile, nil)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveProfile replaces the profile. CreatedAt is kept from the stored
// profile and stamped on first save.
func (r *Repository) SaveProfile(profile models.UserProfile) (models.UserProfile, error) {
	if err := r.validate.Validate(profile); err != nil {
		return profile, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.GetProfile()
	if err != nil && !storage.IsStorageError(err) {
		return profile, err
	}
	if existing != nil && !existing.CreatedAt.IsZero() {
		profile.CreatedAt = existing.CreatedAt
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = r.now()
	}

	if err := storage.Set(r.store, storage.KeyUserProfile, profile); err != nil {
		return profile, err
	}
	return profile, nil
}

// GetSettings returns the stored settings, or the defaults before the first save
func (r *Repository) GetSettings() (models.UserSettings, error) {
	return storage.Get(r.store, storage.KeyUserSettings, models.DefaultSettings())
}

func (r *Repository) SaveSettings(settings models.UserSettings) error {
	if err := r.validate.Validate(settings); err != nil {
		return err
	}
	if settings.Notifications.ProteinTimes == nil {
		settings.Notifications.ProteinTimes = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return storage.Set(r.store, storage.KeyUserSettings, settings)
}

// UpdateSettings applies mutate to the stored settings and saves the result
// under the repository lock. Nothing is written when the read fails or the
// result does not validate.
func (r *Repository) UpdateSettings(mutate func(*models.UserSettings) error) (models.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, err := r.GetSettings()
	if err != nil {
		return models.UserSettings{}, err
	}
	if err := mutate(&settings); err != nil {
		return models.UserSettings{}, err
	}
	if err := r.validate.Validate(settings); err != nil {
		return models.UserSettings{}, err
	}
	if settings.Notifications.ProteinTimes == nil {
		settings.Notifications.ProteinTimes = []string{}
	}

	if err := storage.Set(r.store, storage.KeyUserSettings, settings); err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}
