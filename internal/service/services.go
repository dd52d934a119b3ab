package service

import (
	"fmt"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/crypto"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/internal/validators"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	ExerciseService  ExerciseService
	FoodEntryService FoodEntryService
	AssistantService AssistantService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, generator adapter.GenerativeAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewDiaryValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, storages.SessionRepository, crypto.NewScryptHasher(), validator, logger),
		UserService:      NewUserService(storages.UserRepository, storages.ExerciseRepository, storages.FoodEntryRepository, validator, logger),
		ExerciseService:  NewExerciseService(storages.ExerciseRepository, validator, logger),
		FoodEntryService: NewFoodEntryService(storages.FoodEntryRepository, validator, logger),
		AssistantService: NewAssistantService(generator, validator, logger),
		AppInfoService:   appInfoService,
	}, nil
}
