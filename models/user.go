// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Gender is the biological sex used by the energy expenditure formulas.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel describes how physically active a user is during a typical
// week. It selects the multiplier applied to the basal metabolic rate.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "veryActive"
)

// User represents an account of the tracker together with the optional body
// metrics that drive calorie targets.
type User struct {
	// ID is the public identifier issued by the "userId" counter.
	ID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// Password holds the salted scrypt hash. It is never serialized.
	Password string `json:"-"`

	// Height in centimeters.
	Height *float64 `json:"height,omitempty"`

	// Weight in kilograms.
	Weight *float64 `json:"weight,omitempty"`

	// Age in full years.
	Age *int `json:"age,omitempty"`

	Gender        *Gender        `json:"gender,omitempty"`
	ActivityLevel *ActivityLevel `json:"activityLevel,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasBodyMetrics reports whether every value needed to compute a basal
// metabolic rate is present.
func (u User) HasBodyMetrics() bool {
	return u.Height != nil && u.Weight != nil && u.Age != nil && u.Gender != nil
}

// Credentials is the payload of the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserMetrics is a partial update of a user's body metrics. Only non-nil
// fields are applied.
type UserMetrics struct {
	Height        *float64       `json:"height,omitempty"`
	Weight        *float64       `json:"weight,omitempty"`
	Age           *int           `json:"age,omitempty"`
	Gender        *Gender        `json:"gender,omitempty"`
	ActivityLevel *ActivityLevel `json:"activityLevel,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (m UserMetrics) IsEmpty() bool {
	return m.Height == nil && m.Weight == nil && m.Age == nil && m.Gender == nil && m.ActivityLevel == nil
}
