package models

type LogWaterRequest struct {
	Amount float64 `json:"amount" validate:"gt=0,lte=10000"`
}

// LogProteinRequest takes either an explicit amount or a food id with a quantity
type LogProteinRequest struct {
	Amount   float64 `json:"amount" validate:"omitempty,gt=0"`
	Source   string  `json:"source" validate:"max=100"`
	FoodID   string  `json:"foodId" validate:"omitempty,max=50"`
	Quantity float64 `json:"quantity" validate:"omitempty,gt=0"`
}

type LogMealRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fats     float64 `json:"fats" validate:"gte=0"`
}

// MarkAttendanceRequest marks a date; an empty date means today
type MarkAttendanceRequest struct {
	Date     string  `json:"date" validate:"omitempty,dateformat"`
	Attended bool    `json:"attended"`
	Notes    *string `json:"notes" validate:"omitempty,max=500"`
}

// ExercisePatch carries the fields of an exercise being edited; nil means unchanged
type ExercisePatch struct {
	Name   *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Sets   *int     `json:"sets" validate:"omitempty,gt=0,lte=20"`
	Reps   *string  `json:"reps" validate:"omitempty,repsrange"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0"`
	Notes  *string  `json:"notes" validate:"omitempty,max=500"`
}

type StartWorkoutRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
}

// SetPatch edits one set of the in-progress session
type SetPatch struct {
	ExerciseID string   `json:"exerciseId" validate:"required"`
	SetIndex   int      `json:"setIndex" validate:"gte=0"`
	Reps       *int     `json:"reps" validate:"omitempty,gte=0"`
	Weight     *float64 `json:"weight" validate:"omitempty,gte=0"`
}

type ToggleSetRequest struct {
	ExerciseID string `json:"exerciseId" validate:"required"`
	SetIndex   int    `json:"setIndex" validate:"gte=0"`
}

type CompleteWorkoutRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}
