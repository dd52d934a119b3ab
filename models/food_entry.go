// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Conventional meal types. MealType itself is free text.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// FoodEntry is one line of the food diary. It can be deleted by its owner
// but is otherwise immutable.
type FoodEntry struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Date     time.Time `json:"date"`
	MealType string    `json:"mealType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the FoodEntry model.
func (f FoodEntry) TableName() string {
	return "food_entries"
}

// FoodEntryRequest is the body of POST /api/food-entries.
type FoodEntryRequest struct {
	Name     *string `json:"name"`
	Calories *int    `json:"calories"`
	MealType *string `json:"mealType"`
	Date     *string `json:"date"`
}
