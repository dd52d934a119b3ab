// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of nutri-track.
//
// [GenerativeAdapter] talks to the generative-language API on behalf of the
// server's assistant endpoints. [ServerAdapter] is the REST client used by the
// terminal diary to talk to the nutri-track server.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/nutri-track/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GenerativeAdapter produces text for a prompt.
type GenerativeAdapter interface {
	// GenerateContent returns the first candidate's text. It fails with
	// [ErrNotConfigured] when no API key is set.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ServerAdapter is the client side of the nutri-track REST API. After a
// successful Register or Login the session is attached to every request.
type ServerAdapter interface {
	// SetToken stores the signed session sent as a bearer token.
	SetToken(token string)
	// Token returns the stored session, or "" before login.
	Token() string

	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Logout ends the session on the server and forgets it locally.
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)

	UpdateMetrics(ctx context.Context, metrics models.UserMetrics) (models.User, error)
	Summary(ctx context.Context, dateRange models.DateRange) (models.Summary, error)

	AddExercise(ctx context.Context, exercise models.ExerciseRequest) (models.Exercise, error)
	ListExercises(ctx context.Context, dateRange models.DateRange) ([]models.Exercise, error)

	AddFoodEntry(ctx context.Context, entry models.FoodEntryRequest) (models.FoodEntry, error)
	ListFoodEntries(ctx context.Context, dateRange models.DateRange) ([]models.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, id int64) error

	Chat(ctx context.Context, prompt string) (models.ChatResponse, error)
	EstimateCalories(ctx context.Context, request models.CalorieEstimateRequest) (models.CalorieEstimate, error)

	Version(ctx context.Context) (string, error)
}
