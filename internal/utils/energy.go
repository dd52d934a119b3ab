package utils

import (
	"math"

	"github.com/MKhiriev/nutri-track/models"
)

// activityMultipliers scale the basal metabolic rate to total daily energy
// expenditure.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.Sedentary:  1.2,
	models.Light:      1.375,
	models.Moderate:   1.55,
	models.Active:     1.725,
	models.VeryActive: 1.9,
}

// CalculateBMR returns the revised Harris–Benedict basal metabolic rate in
// kcal/day. Height is in centimetres, weight in kilograms and age in years.
func CalculateBMR(gender models.Gender, heightCm, weightKg float64, age int) float64 {
	if gender == models.Male {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// ActivityMultiplier returns the TDEE factor of level. Unknown or missing
// levels count as sedentary.
func ActivityMultiplier(level *models.ActivityLevel) float64 {
	if level != nil {
		if m, ok := activityMultipliers[*level]; ok {
			return m
		}
	}
	return activityMultipliers[models.Sedentary]
}

// CalculateBMI expects height in centimetres and weight in kilograms. The
// result is rounded to one decimal.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100
	return math.Round(weightKg/(h*h)*10) / 10
}

// BMICategory maps a BMI value to its WHO category.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
