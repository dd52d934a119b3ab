package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
)

type exerciseService struct {
	exerciseRepository store.ExerciseRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewExerciseService constructs an ExerciseService.
func NewExerciseService(exerciseRepository store.ExerciseRepository, validator validators.Validator, logger *logger.Logger) ExerciseService {
	return &exerciseService{
		exerciseRepository: exerciseRepository,
		validator:          validator,
		logger:             logger,
	}
}

// AddExercise logs a workout for userID. The owner always comes from the
// session, never from the request.
func (s *exerciseService) AddExercise(ctx context.Context, userID int64, request models.ExerciseRequest) (models.Exercise, error) {
	if err := validate(ctx, s.validator, request); err != nil {
		return models.Exercise{}, err
	}

	date, err := requestDate(*request.Date)
	if err != nil {
		return models.Exercise{}, err
	}

	exercise, err := s.exerciseRepository.AddExercise(ctx, models.Exercise{
		UserID:         userID,
		Type:           strings.TrimSpace(*request.Type),
		Duration:       *request.Duration,
		CaloriesBurned: *request.CaloriesBurned,
		Date:           date,
	})
	if err != nil {
		return models.Exercise{}, fmt.Errorf("exercise creation failed: %w", err)
	}

	return exercise, nil
}

func (s *exerciseService) GetExercises(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.Exercise, error) {
	exercises, err := s.exerciseRepository.GetExercises(ctx, userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("exercises lookup failed: %w", err)
	}
	return exercises, nil
}

type foodEntryService struct {
	foodEntryRepository store.FoodEntryRepository
	validator           validators.Validator
	logger              *logger.Logger
}

// NewFoodEntryService constructs a FoodEntryService.
func NewFoodEntryService(foodEntryRepository store.FoodEntryRepository, validator validators.Validator, logger *logger.Logger) FoodEntryService {
	return &foodEntryService{
		foodEntryRepository: foodEntryRepository,
		validator:           validator,
		logger:              logger,
	}
}

func (s *foodEntryService) AddFoodEntry(ctx context.Context, userID int64, request models.FoodEntryRequest) (models.FoodEntry, error) {
	if err := validate(ctx, s.validator, request); err != nil {
		return models.FoodEntry{}, err
	}

	date, err := requestDate(*request.Date)
	if err != nil {
		return models.FoodEntry{}, err
	}

	entry, err := s.foodEntryRepository.AddFoodEntry(ctx, models.FoodEntry{
		UserID:   userID,
		Name:     strings.TrimSpace(*request.Name),
		Calories: *request.Calories,
		MealType: strings.TrimSpace(*request.MealType),
		Date:     date,
	})
	if err != nil {
		return models.FoodEntry{}, fmt.Errorf("food entry creation failed: %w", err)
	}

	return entry, nil
}

func (s *foodEntryService) GetFoodEntries(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error) {
	entries, err := s.foodEntryRepository.GetFoodEntries(ctx, userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("food entries lookup failed: %w", err)
	}
	return entries, nil
}

func (s *foodEntryService) DeleteFoodEntry(ctx context.Context, userID, entryID int64) error {
	deleted, err := s.foodEntryRepository.DeleteFoodEntry(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("food entry deletion failed: %w", err)
	}
	if !deleted {
		logger.FromContext(ctx).Debug().
			Int64("user_id", userID).
			Int64("entry_id", entryID).
			Msg("food entry not found or owned by another user")
		return ErrNotFound
	}
	return nil
}

// requestDate parses the "date" of a diary request. A calendar date means
// midnight UTC.
func requestDate(s string) (time.Time, error) {
	t, _, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrValidation,
			&validators.ValidationError{Field: validators.FieldDate, Err: validators.ErrInvalidDateFormat})
	}
	return t, nil
}
