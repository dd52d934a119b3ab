package service

import "errors"

var (
	// ErrValidation wraps a [validators.ValidationError]; errors.As still
	// reaches the field.
	ErrValidation = errors.New("validation error")

	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrNotFound              = errors.New("not found")

	ErrPasswordHashing       = errors.New("password hashing failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
