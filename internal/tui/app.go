package tui

import (
	"context"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx context.Context
	api adapter.ServerAdapter

	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	user          models.User
	buildInfo     models.AppBuildInfo
	serverVersion string

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, api adapter.ServerAdapter, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		api:       api,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdServerVersion()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		if msg.err == nil {
			r.serverVersion = msg.version
		}
		return r, nil
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		return r, r.current.Init()
	case LoginResult:
		// Finalize login/register flow on success.
		if msg.Err == nil {
			r.user = msg.User
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("NUTRITRACK", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx, api := r.ctx, r.api
	return func() tea.Msg {
		version, err := api.Version(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
