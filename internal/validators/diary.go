package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/models"
)

// Field names double as the JSON keys reported back to clients.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	// FieldPasswordPresent only requires a non-empty password. Login uses it
	// so that a short wrong password is reported as bad credentials.
	FieldPasswordPresent = "password_present"

	FieldHeight        = "height"
	FieldWeight        = "weight"
	FieldAge           = "age"
	FieldGender        = "gender"
	FieldActivityLevel = "activityLevel"
	// FieldAnyMetric requires at least one metric to be present.
	FieldAnyMetric = "metrics"

	FieldType           = "type"
	FieldDuration       = "duration"
	FieldCaloriesBurned = "caloriesBurned"
	FieldDate           = "date"

	FieldName     = "name"
	FieldCalories = "calories"
	FieldMealType = "mealType"

	FieldPrompt = "prompt"
	FieldFood   = "food"
)

const (
	maxUsernameLength = 64
	minPasswordLength = 6
)

var (
	allowedGenders        = []models.Gender{models.Male, models.Female}
	allowedActivityLevels = []models.ActivityLevel{
		models.Sedentary,
		models.Light,
		models.Moderate,
		models.Active,
		models.VeryActive,
	}
)

// DiaryValidator implements [Validator] for every request body the API
// accepts: credentials, body metrics, exercises, food entries and assistant
// prompts. Value and pointer forms are both accepted.
type DiaryValidator struct{}

// NewDiaryValidator constructs a [DiaryValidator].
func NewDiaryValidator() Validator {
	return &DiaryValidator{}
}

// Validate dispatches on the dynamic type of obj. Unknown types yield
// [ErrUnsupportedType]; unknown field names yield [ErrUnknownField].
func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.UserMetrics:
		return v.validateMetrics(ctx, value, fields...)
	case *models.UserMetrics:
		return v.validateMetrics(ctx, *value, fields...)

	case models.ExerciseRequest:
		return v.validateExercise(ctx, value, fields...)
	case *models.ExerciseRequest:
		return v.validateExercise(ctx, *value, fields...)

	case models.FoodEntryRequest:
		return v.validateFoodEntry(ctx, value, fields...)
	case *models.FoodEntryRequest:
		return v.validateFoodEntry(ctx, *value, fields...)

	case models.ChatRequest:
		return v.validateChat(ctx, value, fields...)
	case *models.ChatRequest:
		return v.validateChat(ctx, *value, fields...)

	case models.CalorieEstimateRequest:
		return v.validateCalorieEstimate(ctx, value, fields...)
	case *models.CalorieEstimateRequest:
		return v.validateCalorieEstimate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials defaults to the registration rules.
func (v *DiaryValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			username := strings.TrimSpace(c.Username)
			if username == "" {
				return invalid(FieldUsername, ErrUsernameRequired)
			}
			if utf8.RuneCountInString(username) > maxUsernameLength {
				return invalid(FieldUsername, ErrUsernameTooLong)
			}
		case FieldPassword:
			if c.Password == "" {
				return invalid(FieldPassword, ErrPasswordRequired)
			}
			if utf8.RuneCountInString(c.Password) < minPasswordLength {
				return invalid(FieldPassword, ErrPasswordTooShort)
			}
		case FieldPasswordPresent:
			if c.Password == "" {
				return invalid(FieldPassword, ErrPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMetrics checks only the metrics present in the request; nil means
// "leave unchanged".
func (v *DiaryValidator) validateMetrics(_ context.Context, m models.UserMetrics, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyMetric, FieldHeight, FieldWeight, FieldAge, FieldGender, FieldActivityLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyMetric:
			if m.IsEmpty() {
				return invalid("", ErrNoFieldsToUpdate)
			}
		case FieldHeight:
			if m.Height != nil && *m.Height <= 0 {
				return invalid(FieldHeight, ErrInvalidHeight)
			}
		case FieldWeight:
			if m.Weight != nil && *m.Weight <= 0 {
				return invalid(FieldWeight, ErrInvalidWeight)
			}
		case FieldAge:
			if m.Age != nil && *m.Age <= 0 {
				return invalid(FieldAge, ErrInvalidAge)
			}
		case FieldGender:
			if m.Gender != nil && !oneOf(*m.Gender, allowedGenders) {
				return invalid(FieldGender, ErrInvalidGender)
			}
		case FieldActivityLevel:
			if m.ActivityLevel != nil && !oneOf(*m.ActivityLevel, allowedActivityLevels) {
				return invalid(FieldActivityLevel, ErrInvalidActivityLevel)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateExercise(_ context.Context, e models.ExerciseRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldDuration, FieldCaloriesBurned, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if e.Type == nil || strings.TrimSpace(*e.Type) == "" {
				return invalid(FieldType, ErrTypeRequired)
			}
		case FieldDuration:
			if e.Duration == nil || *e.Duration < 0 {
				return invalid(FieldDuration, ErrInvalidDuration)
			}
		case FieldCaloriesBurned:
			if e.CaloriesBurned == nil || *e.CaloriesBurned < 0 {
				return invalid(FieldCaloriesBurned, ErrInvalidCaloriesBurned)
			}
		case FieldDate:
			if err := validateDate(e.Date); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateFoodEntry(_ context.Context, e models.FoodEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCalories, FieldMealType, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if e.Name == nil || strings.TrimSpace(*e.Name) == "" {
				return invalid(FieldName, ErrNameRequired)
			}
		case FieldCalories:
			if e.Calories == nil || *e.Calories < 0 {
				return invalid(FieldCalories, ErrInvalidCalories)
			}
		case FieldMealType:
			if e.MealType == nil || strings.TrimSpace(*e.MealType) == "" {
				return invalid(FieldMealType, ErrMealTypeRequired)
			}
		case FieldDate:
			if err := validateDate(e.Date); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateChat(_ context.Context, r models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompt}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if strings.TrimSpace(r.Prompt) == "" {
				return invalid(FieldPrompt, ErrPromptRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateCalorieEstimate(_ context.Context, r models.CalorieEstimateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFood}
	}

	for _, f := range fields {
		switch f {
		case FieldFood:
			if strings.TrimSpace(r.Food) == "" {
				return invalid(FieldFood, ErrFoodRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDate(date *string) error {
	if date == nil || strings.TrimSpace(*date) == "" {
		return invalid(FieldDate, ErrDateRequired)
	}
	if _, _, err := utils.ParseDate(*date); err != nil {
		return invalid(FieldDate, ErrInvalidDateFormat)
	}
	return nil
}

func oneOf[T comparable](value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
