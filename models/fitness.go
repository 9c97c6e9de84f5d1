package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the layout of every log date (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// MonthLayout is the layout used to select a calendar month (YYYY-MM)
const MonthLayout = "2006-01"

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// NewID returns a unique, time-ordered identifier
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

type WaterLog struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount" validate:"gt=0"`
	Date      string    `json:"date" validate:"required,dateformat"`
	Timestamp time.Time `json:"timestamp"`
}

type ProteinLog struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount" validate:"gt=0"`
	Source    string    `json:"source" validate:"max=100"`
	Date      string    `json:"date" validate:"required,dateformat"`
	Timestamp time.Time `json:"timestamp"`
}

type MealLog struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Calories  float64   `json:"calories" validate:"gte=0"`
	Protein   float64   `json:"protein" validate:"gte=0"`
	Carbs     float64   `json:"carbs" validate:"gte=0"`
	Fats      float64   `json:"fats" validate:"gte=0"`
	Date      string    `json:"date" validate:"required,dateformat"`
	Timestamp time.Time `json:"timestamp"`
}

// GymLog records attendance for one date. There is at most one per date.
type GymLog struct {
	ID        string    `json:"id"`
	Date      string    `json:"date" validate:"required,dateformat"`
	Attended  bool      `json:"attended"`
	Notes     *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
	Timestamp time.Time `json:"timestamp"`
}

type Exercise struct {
	ID     string   `json:"id"`
	Name   string   `json:"name" validate:"required,max=100"`
	Sets   int      `json:"sets" validate:"gt=0,lte=20"`
	Reps   string   `json:"reps" validate:"required,repsrange"`
	Weight *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Notes  *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// WorkoutTemplate is the editable plan for one weekday
type WorkoutTemplate struct {
	ID           string     `json:"id"`
	Day          string     `json:"day" validate:"required,weekday"`
	Name         string     `json:"name" validate:"required,max=100"`
	MuscleGroups []string   `json:"muscleGroups"`
	Exercises    []Exercise `json:"exercises" validate:"dive"`
}

type CompletedSet struct {
	Reps      int     `json:"reps" validate:"gte=0"`
	Weight    float64 `json:"weight" validate:"gte=0"`
	Completed bool    `json:"completed"`
}

type CompletedExercise struct {
	ExerciseID string         `json:"exerciseId"`
	Name       string         `json:"name"`
	Sets       []CompletedSet `json:"sets" validate:"dive"`
}

type WorkoutSession struct {
	ID         string              `json:"id"`
	TemplateID string              `json:"templateId" validate:"required"`
	Date       string              `json:"date" validate:"required,dateformat"`
	Exercises  []CompletedExercise `json:"exercises" validate:"dive"`
	Duration   *int                `json:"duration,omitempty"`
	Notes      *string             `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Timestamp  time.Time           `json:"timestamp"`
}

// UserProfile is absent until onboarding completes
type UserProfile struct {
	Name          string        `json:"name" validate:"required,max=100"`
	Age           int           `json:"age" validate:"gt=0,lte=120"`
	Weight        float64       `json:"weight" validate:"gt=0,lte=500"`
	Height        float64       `json:"height" validate:"gt=0,lte=300"`
	Gender        string        `json:"gender" validate:"required,gender"`
	ActivityLevel ActivityLevel `json:"activityLevel" validate:"required,activitylevel"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type DailyGoals struct {
	Water    float64 `json:"water" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Calories float64 `json:"calories" validate:"gte=0"`
}

type NotificationSettings struct {
	Water         bool     `json:"water"`
	Protein       bool     `json:"protein"`
	Gym           bool     `json:"gym"`
	WaterInterval int      `json:"waterInterval" validate:"gte=1,lte=24"`
	ProteinTimes  []string `json:"proteinTimes" validate:"dive,clock"`
}

type UserSettings struct {
	Goals         DailyGoals           `json:"goals"`
	Notifications NotificationSettings `json:"notifications"`
}

// DefaultSettings is the record served before the user saves any settings
func DefaultSettings() UserSettings {
	return UserSettings{
		Goals: DailyGoals{
			Water:    2000,
			Protein:  150,
			Calories: 2000,
		},
		Notifications: NotificationSettings{
			Water:         true,
			Protein:       true,
			Gym:           true,
			WaterInterval: 1,
			ProteinTimes:  []string{"08:00", "12:00", "18:00"},
		},
	}
}

func (l WaterLog) LogDate() string    { return l.Date }
func (l WaterLog) LogTime() time.Time { return l.Timestamp }
func (l WaterLog) Quantity() float64  { return l.Amount }

func (l ProteinLog) LogDate() string    { return l.Date }
func (l ProteinLog) LogTime() time.Time { return l.Timestamp }
func (l ProteinLog) Quantity() float64  { return l.Amount }

func (l MealLog) LogDate() string    { return l.Date }
func (l MealLog) LogTime() time.Time { return l.Timestamp }

// Quantity of a meal is its calories
func (l MealLog) Quantity() float64 { return l.Calories }

func (l GymLog) LogDate() string    { return l.Date }
func (l GymLog) LogTime() time.Time { return l.Timestamp }

func (s WorkoutSession) LogDate() string    { return s.Date }
func (s WorkoutSession) LogTime() time.Time { return s.Timestamp }

// Clone returns a deep copy so callers can't mutate the in-progress session
func (s WorkoutSession) Clone() WorkoutSession {
	out := s
	out.Exercises = make([]CompletedExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		ex.Sets = append([]CompletedSet(nil), ex.Sets...)
		out.Exercises[i] = ex
	}
	if s.Duration != nil {
		d := *s.Duration
		out.Duration = &d
	}
	if s.Notes != nil {
		n := *s.Notes
		out.Notes = &n
	}
	return out
}
