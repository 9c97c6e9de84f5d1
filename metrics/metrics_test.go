package metrics

import (
	"testing"
	"time"

	"gym-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(date string, hour int) time.Time {
	d, _ := time.Parse(models.DateLayout, date)
	return d.Add(time.Duration(hour) * time.Hour)
}

func water(id, date string, hour int, amount float64) models.WaterLog {
	return models.WaterLog{ID: id, Amount: amount, Date: date, Timestamp: at(date, hour)}
}

func TestDailyTotal(t *testing.T) {
	logs := []models.WaterLog{
		water("a", "2024-03-14", 8, 500),
		water("b", "2024-03-15", 8, 250),
		water("c", "2024-03-15", 12, 750),
	}

	assert.Equal(t, 1000.0, DailyTotal(logs, "2024-03-15"))
	assert.Equal(t, 500.0, DailyTotal(logs, "2024-03-14"))
	assert.Equal(t, 0.0, DailyTotal(logs, "2024-03-16"))

	meals := []models.MealLog{
		{Name: "Oats", Calories: 350, Date: "2024-03-15"},
		{Name: "Rice", Calories: 600, Date: "2024-03-15"},
	}
	assert.Equal(t, 950.0, DailyTotal(meals, "2024-03-15"))
}

func TestLogsForDate_NewestFirst(t *testing.T) {
	logs := []models.WaterLog{
		water("a", "2024-03-15", 8, 250),
		water("b", "2024-03-14", 9, 250),
		water("c", "2024-03-15", 18, 250),
		water("d", "2024-03-15", 12, 250),
	}

	today := LogsForDate(logs, "2024-03-15")
	require.Len(t, today, 3)
	assert.Equal(t, "c", today[0].ID)
	assert.Equal(t, "d", today[1].ID)
	assert.Equal(t, "a", today[2].ID)

	assert.NotNil(t, LogsForDate(logs, "2020-01-01"))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		goal    float64
		want    float64
	}{
		{"Nothing logged", 0, 2000, 0},
		{"Halfway", 1000, 2000, 50},
		{"Exactly at goal", 2000, 2000, 100},
		{"Past goal is clamped", 5000, 2000, 100},
		{"Zero goal", 500, 0, 0},
		{"Negative goal", 500, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Progress(tt.current, tt.goal), 1e-9)
		})
	}
}

func TestProgress_AlwaysInRange(t *testing.T) {
	for _, goal := range []float64{1, 150, 2000, 3500.5} {
		for current := 0.0; current <= goal*3; current += goal / 7 {
			p := Progress(current, goal)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
	assert.Equal(t, 2.5, Ratio(5000, 2000), "ratio is not clamped")
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 0.0, Remaining(2000, 2000))
	assert.Equal(t, 0.0, Remaining(2500, 2000))
	assert.Equal(t, 1250.0, Remaining(750, 2000))
	assert.Equal(t, 0.0, Remaining(10, 0))
}

func TestGoalCrossed(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		added    float64
		goal     float64
		want     bool
	}{
		{"Jump straight past goal", 0, 2500, 2000, true},
		{"Land exactly on goal", 1800, 200, 2000, true},
		{"Still below", 1000, 500, 2000, false},
		{"Already past goal", 2500, 100, 2000, false},
		{"Already exactly at goal", 2000, 100, 2000, false},
		{"No goal", 0, 500, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoalCrossed(tt.previous, tt.added, tt.goal))
		})
	}
}

func TestGoalCrossed_FiresOncePerDay(t *testing.T) {
	goal := 2000.0
	total := 0.0
	fired := 0
	for _, amount := range []float64{2500, 100, 250, 1000} {
		if GoalCrossed(total, amount, goal) {
			fired++
		}
		total += amount
	}
	assert.Equal(t, 1, fired)
}

func TestRecommendedProtein(t *testing.T) {
	tests := []struct {
		weight float64
		level  models.ActivityLevel
		want   int
	}{
		{70, models.ActivityModerate, 84},
		{80, models.ActivityVeryActive, 160},
		{70, models.ActivitySedentary, 56},
		{65, models.ActivityLight, 65},
		{75, models.ActivityActive, 120},
		{62.5, models.ActivitySedentary, 50},
		{70.3, models.ActivityModerate, 84},
		{70.5, models.ActivityLight, 71},
	}

	for _, tt := range tests {
		got, err := RecommendedProtein(tt.weight, tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v kg at %s", tt.weight, tt.level)
	}

	_, err := RecommendedProtein(70, "couch")
	assert.ErrorIs(t, err, ErrUnknownActivityLevel)
}

func TestBMI(t *testing.T) {
	bmi, err := BMI(70, 175)
	require.NoError(t, err)
	assert.Equal(t, "22.9", FormatBMI(bmi))
	assert.Equal(t, "Normal weight", BMICategory(bmi))

	bmi, err = BMI(95, 175)
	require.NoError(t, err)
	assert.Equal(t, "31.0", FormatBMI(bmi))
	assert.Equal(t, "Obese", BMICategory(bmi))

	assert.Equal(t, "Underweight", BMICategory(17.2))
	assert.Equal(t, "Overweight", BMICategory(27))

	_, err = BMI(70, 0)
	assert.ErrorIs(t, err, ErrInvalidMeasurements)
}

func TestMonthlyAttendance(t *testing.T) {
	var logs []models.GymLog
	for day := 1; day <= 20; day++ {
		date := time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
		logs = append(logs, models.GymLog{ID: date, Date: date, Attended: day <= 15})
	}
	logs = append(logs,
		models.GymLog{Date: "2024-02-28", Attended: true},
		models.GymLog{Date: "2024-04-01", Attended: false},
	)

	got := MonthlyAttendance(logs, "2024-03")
	assert.Equal(t, Attendance{Attended: 15, Missed: 5, Total: 20, Percentage: 75}, got)

	assert.Equal(t, Attendance{}, MonthlyAttendance(logs, "2023-12"))

	month := LogsForMonth(logs, "2024-03")
	require.Len(t, month, 20)
	assert.Equal(t, "2024-03-01", month[0].Date)
}

func TestMonthlyAttendance_RoundsHalfUp(t *testing.T) {
	logs := []models.GymLog{
		{Date: "2024-05-01", Attended: true},
		{Date: "2024-05-02", Attended: false},
		{Date: "2024-05-03", Attended: false},
		{Date: "2024-05-04", Attended: false},
		{Date: "2024-05-05", Attended: false},
		{Date: "2024-05-06", Attended: false},
		{Date: "2024-05-07", Attended: false},
		{Date: "2024-05-08", Attended: false},
	}
	// 1/8 = 12.5%
	assert.Equal(t, 13, MonthlyAttendance(logs, "2024-05").Percentage)
}

func TestGroupByDate(t *testing.T) {
	logs := []models.WaterLog{
		water("a", "2024-03-13", 9, 250),
		water("b", "2024-03-15", 8, 250),
		water("c", "2024-03-14", 10, 250),
		water("d", "2024-03-15", 20, 250),
		water("e", "2024-03-13", 21, 250),
		water("f", "2024-03-15", 14, 250),
	}

	groups := GroupByDate(logs)
	require.Len(t, groups, 3)

	assert.Equal(t, "2024-03-15", groups[0].Date)
	assert.Equal(t, "2024-03-14", groups[1].Date)
	assert.Equal(t, "2024-03-13", groups[2].Date)

	ids := func(g DateGroup[models.WaterLog]) []string {
		var out []string
		for _, l := range g.Logs {
			out = append(out, l.ID)
		}
		return out
	}
	assert.Equal(t, []string{"d", "f", "b"}, ids(groups[0]))
	assert.Equal(t, []string{"c"}, ids(groups[1]))
	assert.Equal(t, []string{"e", "a"}, ids(groups[2]))

	assert.Empty(t, GroupByDate([]models.WaterLog{}))
}

func TestDailyTotals_MatchesFullRecompute(t *testing.T) {
	var logs []models.ProteinLog
	totals := make(DailyTotals)
	dates := []string{"2024-03-13", "2024-03-14", "2024-03-15"}

	for i := 0; i < 30; i++ {
		log := models.ProteinLog{
			ID:        string(rune('a' + i)),
			Amount:    float64(5 + i%7*3),
			Date:      dates[i%len(dates)],
			Timestamp: at(dates[i%len(dates)], i%24),
		}
		logs = append(logs, log)
		totals.Add(log.Date, log.Amount)

		for _, d := range dates {
			assert.Equal(t, DailyTotal(logs, d), totals.Get(d))
		}
	}

	assert.Equal(t, totals, IndexTotals(logs))
	assert.Equal(t, []string{"2024-03-15", "2024-03-14", "2024-03-13"}, totals.Dates())
}

func TestSummarize(t *testing.T) {
	logs := []models.WaterLog{
		water("a", "2024-03-13", 9, 2500),
		water("b", "2024-03-14", 9, 1000),
		water("c", "2024-03-15", 9, 1500),
		water("d", "2024-03-15", 19, 500),
	}

	summary := Summarize(logs, 2000)
	require.Len(t, summary.Days, 3)

	assert.Equal(t, DaySummary{Date: "2024-03-15", Total: 2000, Progress: 100, GoalMet: true}, summary.Days[0])
	assert.Equal(t, DaySummary{Date: "2024-03-14", Total: 1000, Progress: 50, GoalMet: false}, summary.Days[1])
	assert.Equal(t, 5500.0, summary.Total)
	assert.InDelta(t, 5500.0/3, summary.DailyAverage, 1e-9)
	assert.Equal(t, 2, summary.DaysGoalMet)

	empty := Summarize([]models.WaterLog{}, 2000)
	assert.Empty(t, empty.Days)
	assert.Equal(t, 0.0, empty.DailyAverage)
}

func TestMacroTotals(t *testing.T) {
	meals := []models.MealLog{
		{Name: "Oats", Calories: 350, Protein: 12, Carbs: 60, Fats: 6, Date: "2024-03-15"},
		{Name: "Chicken", Calories: 500, Protein: 45, Carbs: 40, Fats: 15, Date: "2024-03-15"},
		{Name: "Pizza", Calories: 900, Protein: 30, Carbs: 100, Fats: 40, Date: "2024-03-14"},
	}

	assert.Equal(t, Macros{Calories: 850, Protein: 57, Carbs: 100, Fats: 21}, MacroTotals(meals, "2024-03-15"))
}

func TestSummarizeWorkouts(t *testing.T) {
	d45, d60 := 45, 60
	sessions := []models.WorkoutSession{
		{
			Duration: &d45,
			Exercises: []models.CompletedExercise{
				{ExerciseID: "1", Sets: []models.CompletedSet{
					{Reps: 10, Weight: 50, Completed: true},
					{Reps: 8, Weight: 55, Completed: true},
					{Reps: 6, Weight: 60, Completed: false},
				}},
			},
		},
		{Duration: &d60},
		{},
	}

	stats := SummarizeWorkouts(sessions)
	assert.Equal(t, 3, stats.Sessions)
	assert.Equal(t, 105, stats.TotalDuration)
	assert.Equal(t, 2, stats.CompletedSets)
	assert.Equal(t, 940.0, stats.Volume)
}
