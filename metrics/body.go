package metrics

import (
	"errors"
	"strconv"

	"gym-tracker/models"
)

var (
	ErrUnknownActivityLevel = errors.New("unknown activity level")
	ErrInvalidMeasurements  = errors.New("weight and height must be positive")
)

// proteinMultipliers are grams of protein per kg of body weight
var proteinMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  0.8,
	models.ActivityLight:      1.0,
	models.ActivityModerate:   1.2,
	models.ActivityActive:     1.6,
	models.ActivityVeryActive: 2.0,
}

// RecommendedProtein is the daily protein target in grams for weightKg at level
func RecommendedProtein(weightKg float64, level models.ActivityLevel) (int, error) {
	multiplier, ok := proteinMultipliers[level]
	if !ok {
		return 0, ErrUnknownActivityLevel
	}
	return int(roundHalfUp(weightKg * multiplier)), nil
}

// BMI expects weight in kilograms and height in centimeters
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurements
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

// FormatBMI renders a BMI with one decimal place
func FormatBMI(bmi float64) string {
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
