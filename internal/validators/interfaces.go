// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the service
// layer.
//
// Every rule violation is reported as a [*ValidationError] naming the JSON
// field at fault, so the HTTP layer can answer with a field-level message.
// Validators never touch storage.
package validators

import "context"

// Validator validates a request value, optionally restricted to the named
// fields. Without fields a type-specific default set is checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
