// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/nutri-track/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user logs in or registers.
	LoginFlow(ctx context.Context) (models.User, error)
	// MainLoop shows the diary. logout reports that the user should be sent
	// back to the login flow.
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}
