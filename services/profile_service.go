package services

import (
	"context"
	"fmt"
	"log/slog"

	"gym-tracker/metrics"
	"gym-tracker/models"
)

type ProfileOverview struct {
	Profile            models.UserProfile `json:"profile"`
	BMI                string             `json:"bmi"`
	BMICategory        string             `json:"bmiCategory"`
	RecommendedProtein int                `json:"recommendedProtein"`
	ReminderWarning    string             `json:"reminderWarning,omitempty"`
}

// ProfileService handles onboarding and profile edits
type ProfileService struct {
	repo      ProfileRepository
	reminders ReminderSyncer
	logger    *slog.Logger
}

func NewProfileService(repo ProfileRepository, reminders ReminderSyncer, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		repo:      repo,
		reminders: reminders,
		logger:    logger,
	}
}

type OnboardingStatus struct {
	Onboarded bool   `json:"onboarded"`
	Warning   string `json:"warning,omitempty"`
}

// Status reports whether a profile exists. An unreadable profile counts as
// not onboarded.
func (ps *ProfileService) Status() (*OnboardingStatus, error) {
	profile, err := ps.repo.GetProfile()
	warning, err := readFallback(ps.logger, "profile", err)
	if err != nil {
		return nil, err
	}
	return &OnboardingStatus{Onboarded: profile != nil, Warning: warning}, nil
}

// Register completes onboarding. The profile is saved first so an invalid
// profile never changes the protein goal. Calling it again with the same
// profile is safe: CreatedAt is kept and the goal is set to the same value,
// so a request that failed after the profile was saved can be retried.
func (ps *ProfileService) Register(ctx context.Context, profile models.UserProfile) (*ProfileOverview, error) {
	saved, err := ps.repo.SaveProfile(profile)
	if err != nil {
		return nil, err
	}

	settings, err := ps.applyRecommendedProtein(saved)
	if err != nil {
		return nil, err
	}

	o := overview(saved)
	if err := ps.reminders.SyncReminders(ctx, settings.Notifications.Gym); err != nil {
		o.ReminderWarning = err.Error()
	}

	ps.logger.Info("Profile registered", "activity_level", saved.ActivityLevel, "protein_goal", settings.Goals.Protein)
	return o, nil
}

// Update saves profile edits and re-applies the recommended protein goal
func (ps *ProfileService) Update(profile models.UserProfile) (*ProfileOverview, error) {
	existing, err := ps.repo.GetProfile()
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileRequired
	}

	saved, err := ps.repo.SaveProfile(profile)
	if err != nil {
		return nil, err
	}

	if _, err := ps.applyRecommendedProtein(saved); err != nil {
		return nil, err
	}
	return overview(saved), nil
}

// Overview returns the profile with its derived body metrics
func (ps *ProfileService) Overview() (*ProfileOverview, error) {
	profile, err := ps.repo.GetProfile()
	warning, err := readFallback(ps.logger, "profile", err)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		return nil, fmt.Errorf("%w: %s", ErrProfileRequired, warning)
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	return overview(*profile), nil
}

func (ps *ProfileService) applyRecommendedProtein(profile models.UserProfile) (models.UserSettings, error) {
	protein, err := metrics.RecommendedProtein(profile.Weight, profile.ActivityLevel)
	if err != nil {
		return models.UserSettings{}, err
	}

	return ps.repo.UpdateSettings(func(s *models.UserSettings) error {
		s.Goals.Protein = float64(protein)
		return nil
	})
}

func overview(profile models.UserProfile) *ProfileOverview {
	o := &ProfileOverview{Profile: profile}
	if bmi, err := metrics.BMI(profile.Weight, profile.Height); err == nil {
		o.BMI = metrics.FormatBMI(bmi)
		o.BMICategory = metrics.BMICategory(bmi)
	}
	o.RecommendedProtein, _ = metrics.RecommendedProtein(profile.Weight, profile.ActivityLevel)
	return o
}
