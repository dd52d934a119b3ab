// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Summary aggregates the diary over a date range. The energy expenditure
// fields are only present when the user's body metrics are complete.
type Summary struct {
	CaloriesIn     int `json:"caloriesIn"`
	CaloriesBurned int `json:"caloriesBurned"`
	NetCalories    int `json:"netCalories"`

	FoodEntries int `json:"foodEntries"`
	Exercises   int `json:"exercises"`

	BMR            *int     `json:"bmr,omitempty"`
	TDEE           *int     `json:"tdee,omitempty"`
	CalorieBalance *int     `json:"calorieBalance,omitempty"`
	BMI            *float64 `json:"bmi,omitempty"`
	BMICategory    string   `json:"bmiCategory,omitempty"`
}
