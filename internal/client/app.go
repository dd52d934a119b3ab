package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/tui"
)

var (
	errNoServerAdapter = errors.New("server adapter is not set")
	errNoUI            = errors.New("ui is not set")
)

type App struct {
	api    adapter.ServerAdapter
	ui     UI
	logger *logger.Logger
}

func NewApp(api adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, errNoServerAdapter
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{api: api, ui: ui, logger: logger}, nil
}

// Run loops between login and the diary until the user quits. Quitting from
// either screen is not an error.
func (a *App) Run(ctx context.Context) error {
	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}
		a.logger.Info().Int64("user_id", user.ID).Msg("user logged in")

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logout(ctx)
	}
}

// logout ends the server session. A session the server already rejected is
// gone anyway, so 401 is not reported.
func (a *App) logout(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
		a.logger.Warn().Err(err).Msg("logout failed")
	}
	a.api.SetToken("")
	a.logger.Info().Msg("user logged out")
}
