package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
)

type userService struct {
	userRepository      store.UserRepository
	exerciseRepository  store.ExerciseRepository
	foodEntryRepository store.FoodEntryRepository

	validator validators.Validator
	logger    *logger.Logger
}

// NewUserService constructs a UserService.
func NewUserService(
	userRepository store.UserRepository,
	exerciseRepository store.ExerciseRepository,
	foodEntryRepository store.FoodEntryRepository,
	validator validators.Validator,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:      userRepository,
		exerciseRepository:  exerciseRepository,
		foodEntryRepository: foodEntryRepository,
		validator:           validator,
		logger:              logger,
	}
}

// UpdateMetrics merges the provided body metrics into the user.
func (s *userService) UpdateMetrics(ctx context.Context, userID int64, metrics models.UserMetrics) (models.User, error) {
	if err := validate(ctx, s.validator, metrics); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUserMetrics(ctx, userID, metrics)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("metrics update failed: %w", err)
	}

	return user, nil
}

// Summary totals the diary over dateRange. Energy expenditure figures are
// added only when height, weight, age and gender are all known.
func (s *userService) Summary(ctx context.Context, userID int64, dateRange models.DateRange) (models.Summary, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Summary{}, ErrNotFound
		}
		return models.Summary{}, fmt.Errorf("user lookup failed: %w", err)
	}

	entries, err := s.foodEntryRepository.GetFoodEntries(ctx, userID, dateRange)
	if err != nil {
		log.Err(err).Str("func", "*userService.Summary").Msg("food entries lookup failed")
		return models.Summary{}, fmt.Errorf("food entries lookup failed: %w", err)
	}

	exercises, err := s.exerciseRepository.GetExercises(ctx, userID, dateRange)
	if err != nil {
		log.Err(err).Str("func", "*userService.Summary").Msg("exercises lookup failed")
		return models.Summary{}, fmt.Errorf("exercises lookup failed: %w", err)
	}

	return buildSummary(user, entries, exercises), nil
}

func buildSummary(user models.User, entries []models.FoodEntry, exercises []models.Exercise) models.Summary {
	summary := models.Summary{
		FoodEntries: len(entries),
		Exercises:   len(exercises),
	}

	for _, e := range entries {
		summary.CaloriesIn += e.Calories
	}
	for _, e := range exercises {
		summary.CaloriesBurned += e.CaloriesBurned
	}
	summary.NetCalories = summary.CaloriesIn - summary.CaloriesBurned

	if !user.HasBodyMetrics() {
		return summary
	}

	bmr := utils.CalculateBMR(*user.Gender, *user.Height, *user.Weight, *user.Age)
	tdee := bmr * utils.ActivityMultiplier(user.ActivityLevel)
	bmi := utils.CalculateBMI(*user.Height, *user.Weight)

	roundedBMR := int(math.Round(bmr))
	roundedTDEE := int(math.Round(tdee))
	balance := summary.NetCalories - roundedTDEE

	summary.BMR = &roundedBMR
	summary.TDEE = &roundedTDEE
	summary.CalorieBalance = &balance
	summary.BMI = &bmi
	summary.BMICategory = utils.BMICategory(bmi)

	return summary
}
