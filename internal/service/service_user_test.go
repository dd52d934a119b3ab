package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/mock"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

var testDay = models.DateRange{
	Start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 3, 10, 23, 59, 59, 999999000, time.UTC),
}

func newTestUserService(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	UserService,
	*mock.MockUserRepository,
	*mock.MockExerciseRepository,
	*mock.MockFoodEntryRepository,
) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	exercises := mock.NewMockExerciseRepository(ctrl)
	entries := mock.NewMockFoodEntryRepository(ctrl)

	svc := NewUserService(users, exercises, entries, validators.NewDiaryValidator(), logger.Nop())
	return svc, users, exercises, entries
}

// ── UpdateMetrics ────────────────────────────────────────────────────────────

func TestUserService_UpdateMetrics_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _ := newTestUserService(t, ctrl)
	ctx := context.Background()
	metrics := models.UserMetrics{Weight: ptr(72.5), ActivityLevel: ptr(models.Moderate)}

	users.EXPECT().UpdateUserMetrics(ctx, int64(1), metrics).
		Return(models.User{ID: 1, Username: "alice", Weight: ptr(72.5), ActivityLevel: ptr(models.Moderate)}, nil)

	user, err := svc.UpdateMetrics(ctx, 1, metrics)

	require.NoError(t, err)
	assert.Equal(t, 72.5, *user.Weight)
	assert.Nil(t, user.Height)
}

func TestUserService_UpdateMetrics_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUserService(t, ctrl)

	_, err := svc.UpdateMetrics(context.Background(), 1, models.UserMetrics{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	_, err = svc.UpdateMetrics(context.Background(), 1, models.UserMetrics{Gender: ptr(models.Gender("other"))})
	assert.ErrorIs(t, err, validators.ErrInvalidGender)
}

func TestUserService_UpdateMetrics_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _ := newTestUserService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().UpdateUserMetrics(ctx, int64(42), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.UpdateMetrics(ctx, 42, models.UserMetrics{Age: ptr(30)})

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Summary ──────────────────────────────────────────────────────────────────

func TestUserService_Summary_WithoutBodyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, exercises, entries := newTestUserService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1, Username: "alice", Weight: ptr(80.0)}, nil)
	entries.EXPECT().GetFoodEntries(ctx, int64(1), testDay).Return([]models.FoodEntry{
		{Calories: 350}, {Calories: 700}, {Calories: 150},
	}, nil)
	exercises.EXPECT().GetExercises(ctx, int64(1), testDay).Return([]models.Exercise{
		{CaloriesBurned: 300},
	}, nil)

	summary, err := svc.Summary(ctx, 1, testDay)

	require.NoError(t, err)
	assert.Equal(t, 1200, summary.CaloriesIn)
	assert.Equal(t, 300, summary.CaloriesBurned)
	assert.Equal(t, 900, summary.NetCalories)
	assert.Equal(t, 3, summary.FoodEntries)
	assert.Equal(t, 1, summary.Exercises)
	assert.Nil(t, summary.BMR)
	assert.Nil(t, summary.TDEE)
	assert.Nil(t, summary.CalorieBalance)
	assert.Nil(t, summary.BMI)
	assert.Empty(t, summary.BMICategory)
}

func TestUserService_Summary_WithBodyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, exercises, entries := newTestUserService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetUser(ctx, int64(1)).Return(models.User{
		ID:            1,
		Height:        ptr(180.0),
		Weight:        ptr(80.0),
		Age:           ptr(30),
		Gender:        ptr(models.Male),
		ActivityLevel: ptr(models.Moderate),
	}, nil)
	entries.EXPECT().GetFoodEntries(ctx, int64(1), testDay).Return([]models.FoodEntry{{Calories: 2000}}, nil)
	exercises.EXPECT().GetExercises(ctx, int64(1), testDay).Return([]models.Exercise{{CaloriesBurned: 400}}, nil)

	summary, err := svc.Summary(ctx, 1, testDay)

	require.NoError(t, err)
	require.NotNil(t, summary.BMR)
	require.NotNil(t, summary.TDEE)
	require.NotNil(t, summary.CalorieBalance)
	require.NotNil(t, summary.BMI)

	// 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632
	assert.Equal(t, 1854, *summary.BMR)
	// 1853.632 * 1.55 = 2873.1296
	assert.Equal(t, 2873, *summary.TDEE)
	assert.Equal(t, 1600-2873, *summary.CalorieBalance)
	assert.Equal(t, 24.7, *summary.BMI)
	assert.Equal(t, "Normal weight", summary.BMICategory)
}

func TestUserService_Summary_DefaultsToSedentary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, exercises, entries := newTestUserService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetUser(ctx, int64(2)).Return(models.User{
		ID:     2,
		Height: ptr(165.0),
		Weight: ptr(60.0),
		Age:    ptr(30),
		Gender: ptr(models.Female),
	}, nil)
	entries.EXPECT().GetFoodEntries(ctx, int64(2), testDay).Return([]models.FoodEntry{}, nil)
	exercises.EXPECT().GetExercises(ctx, int64(2), testDay).Return([]models.Exercise{}, nil)

	summary, err := svc.Summary(ctx, 2, testDay)

	require.NoError(t, err)
	// 447.593 + 9.247*60 + 3.098*165 - 4.330*30 = 1383.683
	assert.Equal(t, 1384, *summary.BMR)
	// 1383.683 * 1.2 = 1660.4196
	assert.Equal(t, 1660, *summary.TDEE)
	assert.Equal(t, -1660, *summary.CalorieBalance)
	assert.Zero(t, summary.CaloriesIn)
}

func TestUserService_Summary_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, users, _, _ := newTestUserService(t, ctrl)
		users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Summary(context.Background(), 1, testDay)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("food entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, users, _, entries := newTestUserService(t, ctrl)
		users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)
		entries.EXPECT().GetFoodEntries(gomock.Any(), int64(1), testDay).Return(nil, dbErr)

		_, err := svc.Summary(context.Background(), 1, testDay)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("exercises", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, users, exercises, entries := newTestUserService(t, ctrl)
		users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(models.User{ID: 1}, nil)
		entries.EXPECT().GetFoodEntries(gomock.Any(), int64(1), testDay).Return(nil, nil)
		exercises.EXPECT().GetExercises(gomock.Any(), int64(1), testDay).Return(nil, dbErr)

		_, err := svc.Summary(context.Background(), 1, testDay)
		assert.ErrorIs(t, err, dbErr)
	})
}
