package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionIssuer is the "iss" claim of every session cookie.
const SessionIssuer = "nutri-track"

// ErrInvalidSessionCookie is returned when a cookie value cannot be trusted.
var ErrInvalidSessionCookie = errors.New("invalid session cookie")

// SignSessionToken wraps an opaque session token into an HS256 JWT so the
// cookie value cannot be forged without the secret.
//
// The token becomes the "jti" claim and the user id the "sub" claim. The
// store remains the source of truth: a valid signature only proves the value
// was issued by this server, not that the session still exists.
func SignSessionToken(token string, userID int64, issuedAt, expiresAt time.Time, signKey string) (string, error) {
	if token == "" || signKey == "" {
		return "", errors.New("invalid params for signing session token")
	}

	claims := &jwt.RegisteredClaims{
		ID:        token,
		Issuer:    SessionIssuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken verifies the signature, issuer and expiry of a cookie
// value and returns the opaque session token it carries.
func ParseSessionToken(signed, signKey string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(SessionIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}

	if claims.ID == "" {
		return "", fmt.Errorf("%w: empty token id", ErrInvalidSessionCookie)
	}

	return claims.ID, nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}

	return parts[1], nil
}
