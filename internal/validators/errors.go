package validators

import "errors"

// ErrValidation is matched by every error returned from this package.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username must be at most 64 characters")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrInvalidHeight        = errors.New("height must be a positive number of centimetres")
	ErrInvalidWeight        = errors.New("weight must be a positive number of kilograms")
	ErrInvalidAge           = errors.New("age must be a positive number of years")
	ErrInvalidGender        = errors.New("gender must be male or female")
	ErrInvalidActivityLevel = errors.New("activityLevel must be one of sedentary, light, moderate, active, veryActive")

	ErrTypeRequired           = errors.New("type is required")
	ErrInvalidDuration        = errors.New("duration must be a non-negative integer")
	ErrInvalidCaloriesBurned  = errors.New("caloriesBurned must be a non-negative integer")
	ErrNameRequired           = errors.New("name is required")
	ErrInvalidCalories        = errors.New("calories must be a non-negative integer")
	ErrMealTypeRequired       = errors.New("mealType is required")
	ErrDateRequired           = errors.New("date is required")
	ErrInvalidDateFormat      = errors.New("invalid date format, expected RFC 3339 or YYYY-MM-DD")
	ErrInvalidDateRangeBounds = errors.New("end date is before start date")

	ErrPromptRequired = errors.New("prompt is required")
	ErrFoodRequired   = errors.New("food is required")
)

// ValidationError ties a rule violation to the request field that caused it.
// It matches both [ErrValidation] and the specific rule error.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
