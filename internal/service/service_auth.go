package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/nutri-track/internal/crypto"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
)

// authService implements AuthService on top of the user and session
// repositories. Passwords are hashed with a [crypto.PasswordHasher]; login
// goes through a [CredentialVerifier].
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	hasher    crypto.PasswordHasher
	verifier  CredentialVerifier
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs an AuthService that verifies logins with the
// local username/password strategy.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		hasher:            hasher,
		verifier:          NewLocalCredentialVerifier(userRepository, hasher, logger),
		validator:         validator,
		logger:            logger,
	}
}

// Register validates the credentials, rejects a taken username, stores the
// user with a hashed password and opens a session.
//
// The lookup before insert gives the common case a clean conflict; the
// unique index on username closes the race between two concurrent
// registrations, which surfaces as the same [ErrUsernameAlreadyExists].
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := validate(ctx, a.validator, credentials); err != nil {
		return models.User{}, models.Session{}, err
	}

	_, err := a.userRepository.GetUserByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		return models.User{}, models.Session{}, ErrUsernameAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Register").Msg("username lookup failed")
		return models.User{}, models.Session{}, fmt.Errorf("username lookup failed: %w", err)
	}

	hash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Username: credentials.Username, Password: hash})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, models.Session{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	session, err := a.openSession(ctx, user)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, session, nil
}

// Login authenticates through the verifier and opens a new session.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Session, error) {
	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := validate(ctx, a.validator, credentials, validators.FieldUsername, validators.FieldPasswordPresent); err != nil {
		return models.User{}, models.Session{}, err
	}

	user, err := a.verifier.Verify(ctx, credentials)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	session, err := a.openSession(ctx, user)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	return user, session, nil
}

func (a *authService) openSession(ctx context.Context, user models.User) (models.Session, error) {
	session, err := a.sessionRepository.Create(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}
	return session, nil
}

func (a *authService) Logout(ctx context.Context, token string) error {
	if err := a.sessionRepository.Destroy(ctx, token); err != nil {
		return fmt.Errorf("session destroy failed: %w", err)
	}
	return nil
}

// WhoAmI treats a session whose user vanished as unauthenticated.
func (a *authService) WhoAmI(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	return user, nil
}

func (a *authService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	session, err := a.sessionRepository.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrUnauthorized
		}
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}
	session.Token = token
	return session, nil
}
