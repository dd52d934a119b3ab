// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// nutri-track server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of HTTP response bodies. Keeping them in one place keeps
// the wording identical on both sides of the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidRequest is returned for a validation failure that names no
	// single field.
	MsgInvalidRequest = "Invalid request"

	// MsgInvalidCredentials is returned by login when the username is
	// unknown or the password does not match. The two cases are
	// indistinguishable on purpose.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAuthRequired is returned by every protected route when the session
	// is missing, invalid, expired or logged out.
	MsgAuthRequired = "Authentication required"

	// MsgUsernameTaken is returned when registration picks a username that
	// is already in use.
	MsgUsernameTaken = "Username already exists"

	// MsgNotFound is the generic 404 message, also used for unsupported
	// methods on existing paths.
	MsgNotFound = "Not found"

	// MsgUserNotFound is returned when the session's user no longer exists.
	MsgUserNotFound = "User not found"

	// MsgInvalidID is returned when the {id} path segment is not a positive
	// integer.
	MsgInvalidID = "Invalid ID format"

	// MsgFoodEntryNotFound is returned when the food entry does not exist or
	// belongs to another user.
	MsgFoodEntryNotFound = "Food entry not found"

	// MsgFoodEntryDeleted confirms a successful food entry deletion.
	MsgFoodEntryDeleted = "Food entry deleted successfully"

	// MsgLoggedOut confirms a successful logout.
	MsgLoggedOut = "Logged out successfully"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. The cause is logged, never sent.
	MsgInternalServerError = "Internal server error"
)
