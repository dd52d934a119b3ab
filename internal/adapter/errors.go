package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrNotConfigured  = errors.New("generative API key is not configured")
	ErrUpstream       = errors.New("generative API request failed")
	ErrEmptyResponse  = errors.New("generative API returned no text")
	ErrNoSessionToken = errors.New("server did not return a session")
)
