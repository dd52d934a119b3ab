package service

import (
	"context"

	"github.com/MKhiriev/nutri-track/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialVerifier is an authentication strategy: it maps credentials to
// the user they belong to. Unknown users and wrong passwords are both
// reported as [ErrInvalidCredentials].
type CredentialVerifier interface {
	Verify(ctx context.Context, credentials models.Credentials) (models.User, error)
}

type AuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error)
	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error)
	// Logout ends the session identified by token. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error
	// WhoAmI loads the user behind an authenticated request.
	WhoAmI(ctx context.Context, userID int64) (models.User, error)
	// Authenticate resolves a session token or fails with [ErrUnauthorized].
	Authenticate(ctx context.Context, token string) (models.Session, error)
}

type UserService interface {
	UpdateMetrics(ctx context.Context, userID int64, metrics models.UserMetrics) (models.User, error)
	Summary(ctx context.Context, userID int64, dateRange models.DateRange) (models.Summary, error)
}

type ExerciseService interface {
	AddExercise(ctx context.Context, userID int64, request models.ExerciseRequest) (models.Exercise, error)
	GetExercises(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.Exercise, error)
}

type FoodEntryService interface {
	AddFoodEntry(ctx context.Context, userID int64, request models.FoodEntryRequest) (models.FoodEntry, error)
	GetFoodEntries(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error)
	// DeleteFoodEntry fails with [ErrNotFound] when the entry does not exist
	// or belongs to another user.
	DeleteFoodEntry(ctx context.Context, userID, entryID int64) error
}

// AssistantService answers free-form questions and estimates calories. When
// the generative API is unavailable it degrades to labelled demo answers
// instead of failing.
type AssistantService interface {
	Chat(ctx context.Context, request models.ChatRequest) (models.ChatResponse, error)
	EstimateCalories(ctx context.Context, request models.CalorieEstimateRequest) (models.CalorieEstimate, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
