package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nutri-track/models"
)

func ptr[T any](v T) *T { return &v }

func assertField(t *testing.T, err error, wantErr error, wantField string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, wantErr)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, wantField, vErr.Field)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewDiaryValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewDiaryValidator()
	err := v.Validate(context.Background(), models.Credentials{Username: "a", Password: "secret1"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidateCredentials(t *testing.T) {
	v := NewDiaryValidator()
	long := make([]byte, maxUsernameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name      string
		in        any
		fields    []string
		wantErr   error
		wantField string
	}{
		{name: "valid", in: models.Credentials{Username: "alice", Password: "pw123456"}},
		{name: "valid pointer", in: &models.Credentials{Username: "alice", Password: "pw123456"}},
		{name: "blank username", in: models.Credentials{Username: "  ", Password: "pw123456"}, wantErr: ErrUsernameRequired, wantField: FieldUsername},
		{name: "long username", in: models.Credentials{Username: string(long), Password: "pw123456"}, wantErr: ErrUsernameTooLong, wantField: FieldUsername},
		{name: "missing password", in: models.Credentials{Username: "alice"}, wantErr: ErrPasswordRequired, wantField: FieldPassword},
		{name: "short password", in: models.Credentials{Username: "alice", Password: "pw"}, wantErr: ErrPasswordTooShort, wantField: FieldPassword},
		{
			name:   "login accepts short password",
			in:     models.Credentials{Username: "alice", Password: "wrong"},
			fields: []string{FieldUsername, FieldPasswordPresent},
		},
		{
			name:      "login rejects empty password",
			in:        models.Credentials{Username: "alice"},
			fields:    []string{FieldUsername, FieldPasswordPresent},
			wantErr:   ErrPasswordRequired,
			wantField: FieldPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.in, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assertField(t, err, tt.wantErr, tt.wantField)
		})
	}
}

func TestValidateMetrics(t *testing.T) {
	v := NewDiaryValidator()

	tests := []struct {
		name      string
		in        models.UserMetrics
		wantErr   error
		wantField string
	}{
		{name: "single field", in: models.UserMetrics{Weight: ptr(70.0)}},
		{
			name: "all fields",
			in: models.UserMetrics{
				Height: ptr(180.0), Weight: ptr(80.0), Age: ptr(35),
				Gender: ptr(models.Male), ActivityLevel: ptr(models.VeryActive),
			},
		},
		{name: "empty", in: models.UserMetrics{}, wantErr: ErrNoFieldsToUpdate},
		{name: "zero height", in: models.UserMetrics{Height: ptr(0.0)}, wantErr: ErrInvalidHeight, wantField: FieldHeight},
		{name: "negative weight", in: models.UserMetrics{Weight: ptr(-1.0)}, wantErr: ErrInvalidWeight, wantField: FieldWeight},
		{name: "zero age", in: models.UserMetrics{Age: ptr(0)}, wantErr: ErrInvalidAge, wantField: FieldAge},
		{name: "bad gender", in: models.UserMetrics{Gender: ptr(models.Gender("other"))}, wantErr: ErrInvalidGender, wantField: FieldGender},
		{
			name:      "bad activity level",
			in:        models.UserMetrics{ActivityLevel: ptr(models.ActivityLevel("extreme"))},
			wantErr:   ErrInvalidActivityLevel,
			wantField: FieldActivityLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assertField(t, err, tt.wantErr, tt.wantField)
		})
	}
}

func TestValidateExercise(t *testing.T) {
	v := NewDiaryValidator()
	valid := func() models.ExerciseRequest {
		return models.ExerciseRequest{
			Type: ptr("running"), Duration: ptr(30), CaloriesBurned: ptr(300), Date: ptr("2024-03-10T07:30:00Z"),
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *models.ExerciseRequest)
		wantErr   error
		wantField string
	}{
		{name: "valid", mutate: func(*models.ExerciseRequest) {}},
		{name: "calendar date", mutate: func(r *models.ExerciseRequest) { r.Date = ptr("2024-03-10") }},
		{name: "zero duration", mutate: func(r *models.ExerciseRequest) { r.Duration = ptr(0) }},
		{name: "missing type", mutate: func(r *models.ExerciseRequest) { r.Type = nil }, wantErr: ErrTypeRequired, wantField: FieldType},
		{name: "negative duration", mutate: func(r *models.ExerciseRequest) { r.Duration = ptr(-5) }, wantErr: ErrInvalidDuration, wantField: FieldDuration},
		{name: "missing calories", mutate: func(r *models.ExerciseRequest) { r.CaloriesBurned = nil }, wantErr: ErrInvalidCaloriesBurned, wantField: FieldCaloriesBurned},
		{name: "missing date", mutate: func(r *models.ExerciseRequest) { r.Date = nil }, wantErr: ErrDateRequired, wantField: FieldDate},
		{name: "bad date", mutate: func(r *models.ExerciseRequest) { r.Date = ptr("10/03/2024") }, wantErr: ErrInvalidDateFormat, wantField: FieldDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assertField(t, err, tt.wantErr, tt.wantField)
		})
	}
}

func TestValidateFoodEntry(t *testing.T) {
	v := NewDiaryValidator()
	valid := func() models.FoodEntryRequest {
		return models.FoodEntryRequest{
			Name: ptr("Apple"), Calories: ptr(95), MealType: ptr(models.MealBreakfast), Date: ptr("2024-03-10"),
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *models.FoodEntryRequest)
		wantErr   error
		wantField string
	}{
		{name: "valid", mutate: func(*models.FoodEntryRequest) {}},
		{name: "free-text meal type", mutate: func(r *models.FoodEntryRequest) { r.MealType = ptr("brunch") }},
		{name: "blank name", mutate: func(r *models.FoodEntryRequest) { r.Name = ptr(" ") }, wantErr: ErrNameRequired, wantField: FieldName},
		{name: "negative calories", mutate: func(r *models.FoodEntryRequest) { r.Calories = ptr(-1) }, wantErr: ErrInvalidCalories, wantField: FieldCalories},
		{name: "missing meal type", mutate: func(r *models.FoodEntryRequest) { r.MealType = nil }, wantErr: ErrMealTypeRequired, wantField: FieldMealType},
		{name: "bad date", mutate: func(r *models.FoodEntryRequest) { r.Date = ptr("yesterday") }, wantErr: ErrInvalidDateFormat, wantField: FieldDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := v.Validate(context.Background(), &req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assertField(t, err, tt.wantErr, tt.wantField)
		})
	}
}

func TestValidateAssistantRequests(t *testing.T) {
	v := NewDiaryValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ChatRequest{Prompt: "hi"}))
	assertField(t, v.Validate(ctx, models.ChatRequest{Prompt: "  "}), ErrPromptRequired, FieldPrompt)

	assert.NoError(t, v.Validate(ctx, &models.CalorieEstimateRequest{Food: "banana"}))
	assertField(t, v.Validate(ctx, models.CalorieEstimateRequest{Portion: "1 cup"}), ErrFoodRequired, FieldFood)
}
