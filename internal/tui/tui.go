package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit = errors.New("вышел из программы")

	errNoServerAdapter = errors.New("server adapter is not set")
)

type TUI struct {
	api       adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(api adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if api == nil {
		return nil, errNoServerAdapter
	}

	return &TUI{api: api, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the start menu until the user logs in or registers.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.api),
		pageRegister: NewRegisterModel(ctx, t.api),
	}

	root := NewRootModel(ctx, t.api, pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	t.logger.Debug().Int64("user_id", result.user.ID).Msg("login flow finished")
	return result.user, nil
}

// MainLoop runs the diary screen. logout is true when the user asked to log
// out or the session was rejected by the server.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newDiaryModel(ctx, t.api, user, time.Now())
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(diaryModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
