package models

// DefaultWorkoutTemplates is the weekly split seeded on first read
func DefaultWorkoutTemplates() []WorkoutTemplate {
	return []WorkoutTemplate{
		{
			ID:           "monday",
			Day:          "Monday",
			Name:         "Chest & Triceps",
			MuscleGroups: []string{"Chest", "Triceps"},
			Exercises: []Exercise{
				{ID: "1", Name: "Bench Press", Sets: 4, Reps: "8-10"},
				{ID: "2", Name: "Incline Dumbbell Press", Sets: 3, Reps: "10-12"},
				{ID: "3", Name: "Chest Flyes", Sets: 3, Reps: "12-15"},
				{ID: "4", Name: "Tricep Dips", Sets: 3, Reps: "10-12"},
				{ID: "5", Name: "Tricep Pushdowns", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:           "tuesday",
			Day:          "Tuesday",
			Name:         "Back & Biceps",
			MuscleGroups: []string{"Back", "Biceps"},
			Exercises: []Exercise{
				{ID: "6", Name: "Pull-ups", Sets: 4, Reps: "6-10"},
				{ID: "7", Name: "Barbell Rows", Sets: 4, Reps: "8-10"},
				{ID: "8", Name: "Lat Pulldowns", Sets: 3, Reps: "10-12"},
				{ID: "9", Name: "Bicep Curls", Sets: 3, Reps: "12-15"},
				{ID: "10", Name: "Hammer Curls", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:           "wednesday",
			Day:          "Wednesday",
			Name:         "Legs & Shoulders",
			MuscleGroups: []string{"Legs", "Shoulders"},
			Exercises: []Exercise{
				{ID: "11", Name: "Squats", Sets: 4, Reps: "8-12"},
				{ID: "12", Name: "Leg Press", Sets: 3, Reps: "12-15"},
				{ID: "13", Name: "Leg Curls", Sets: 3, Reps: "12-15"},
				{ID: "14", Name: "Shoulder Press", Sets: 4, Reps: "8-12"},
				{ID: "15", Name: "Lateral Raises", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:           "thursday",
			Day:          "Thursday",
			Name:         "Chest & Triceps",
			MuscleGroups: []string{"Chest", "Triceps"},
			Exercises: []Exercise{
				{ID: "16", Name: "Incline Barbell Press", Sets: 4, Reps: "8-10"},
				{ID: "17", Name: "Dumbbell Press", Sets: 3, Reps: "10-12"},
				{ID: "18", Name: "Cable Crossovers", Sets: 3, Reps: "12-15"},
				{ID: "19", Name: "Close Grip Bench", Sets: 3, Reps: "8-10"},
				{ID: "20", Name: "Overhead Extension", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:           "friday",
			Day:          "Friday",
			Name:         "Back & Biceps",
			MuscleGroups: []string{"Back", "Biceps"},
			Exercises: []Exercise{
				{ID: "21", Name: "Deadlifts", Sets: 4, Reps: "6-8"},
				{ID: "22", Name: "Seated Rows", Sets: 4, Reps: "8-10"},
				{ID: "23", Name: "T-Bar Rows", Sets: 3, Reps: "10-12"},
				{ID: "24", Name: "Preacher Curls", Sets: 3, Reps: "10-12"},
				{ID: "25", Name: "Cable Curls", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:           "saturday",
			Day:          "Saturday",
			Name:         "Legs & Shoulders",
			MuscleGroups: []string{"Legs", "Shoulders"},
			Exercises: []Exercise{
				{ID: "26", Name: "Romanian Deadlifts", Sets: 4, Reps: "8-10"},
				{ID: "27", Name: "Leg Extensions", Sets: 3, Reps: "12-15"},
				{ID: "28", Name: "Calf Raises", Sets: 4, Reps: "15-20"},
				{ID: "29", Name: "Arnold Press", Sets: 3, Reps: "10-12"},
				{ID: "30", Name: "Rear Delt Flyes", Sets: 3, Reps: "12-15"},
			},
		},
		{
			ID:           "sunday",
			Day:          "Sunday",
			Name:         "Rest Day",
			MuscleGroups: []string{"Rest"},
			Exercises:    []Exercise{},
		},
	}
}
