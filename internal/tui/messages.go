package tui

import (
	"time"

	"github.com/MKhiriev/nutri-track/models"
)

// Pages of the login flow.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// LoginResult finishes the login flow when Err is nil. Both login and
// registration produce it, since registration also opens a session.
type LoginResult struct {
	User     models.User
	Username string
	Err      error
}

type serverVersionMsg struct {
	version string
	err     error
}

type diaryLoadedMsg struct {
	day       time.Time
	entries   []models.FoodEntry
	exercises []models.Exercise
	summary   models.Summary
	err       error
}

type foodEntrySavedMsg struct {
	entry models.FoodEntry
	err   error
}

type exerciseSavedMsg struct {
	exercise models.Exercise
	err      error
}

type foodEntryDeletedMsg struct {
	err error
}

type metricsSavedMsg struct {
	user models.User
	err  error
}

type assistantAnswerMsg struct {
	text   string
	isDemo bool
	notice string
	err    error
}
