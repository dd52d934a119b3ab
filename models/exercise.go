// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Exercise is a single logged workout. It is immutable once created.
type Exercise struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	// Type is a free-text label such as "running" or "yoga".
	Type string `json:"type"`

	// Duration in minutes.
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Date           time.Time `json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Exercise model.
func (e Exercise) TableName() string {
	return "exercises"
}

// ExerciseRequest is the body of POST /api/exercises. Date is kept as the raw
// string sent by the client and parsed by the validator.
type ExerciseRequest struct {
	Type           *string `json:"type"`
	Duration       *int    `json:"duration"`
	CaloriesBurned *int    `json:"caloriesBurned"`
	Date           *string `json:"date"`
}
