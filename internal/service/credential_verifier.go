package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nutri-track/internal/crypto"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/models"
)

// unknownUserHash is verified against when the username does not exist so
// that both failure paths cost one key derivation.
const unknownUserHash = "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000.00000000000000000000000000000000"

// localCredentialVerifier checks a username and password against the users
// table.
type localCredentialVerifier struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	logger         *logger.Logger
}

// NewLocalCredentialVerifier constructs the username/password
// [CredentialVerifier].
func NewLocalCredentialVerifier(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) CredentialVerifier {
	return &localCredentialVerifier{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (v *localCredentialVerifier) Verify(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := v.userRepository.GetUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			v.hasher.Verify(credentials.Password, unknownUserHash)
			log.Debug().Str("func", "*localCredentialVerifier.Verify").Msg("unknown username")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*localCredentialVerifier.Verify").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !v.hasher.Verify(credentials.Password, user.Password) {
		log.Debug().Str("func", "*localCredentialVerifier.Verify").Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
