// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware when looking for the
// session credential. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCredential is returned when the request carries neither
	// the session cookie nor an "Authorization" header.
	ErrNoSessionCredential = errors.New("no session cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <value>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidFoodEntryID is returned for a non-numeric or non-positive
	// {id} path segment.
	ErrInvalidFoodEntryID = errors.New("invalid food entry id")
)
