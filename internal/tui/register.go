package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders
// three text inputs (username, password, password confirmation) and dispatches an
// async registration command on form submission.
//
// Registration opens a session, so success produces a [LoginResult] that finishes
// the login flow right away.
type RegisterModel struct {
	ctx       context.Context
	api       adapter.ServerAdapter
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The username field receives focus
// immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, api adapter.ServerAdapter) *RegisterModel {
	return &RegisterModel{
		ctx:       ctx,
		api:       api,
		validator: validators.NewDiaryValidator(),
		inputs: []textinput.Model{
			newUsernameInput(),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Enter runs the same credential rules as the
// server before sending anything, so most mistakes are reported offline.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focus = focusInput(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = focusInput(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			credentials := models.Credentials{
				Username: strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			}
			if err := m.validator.Validate(m.ctx, credentials); err != nil {
				m.errMsg = humanizeError(err)
				return m, nil
			}
			if credentials.Password != m.inputs[2].Value() {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(credentials)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Поле      │ Значение\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин     │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Пароль    │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Повтор    │ [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Регистрация...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(credentials models.Credentials) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		user, err := api.Register(ctx, credentials)
		return LoginResult{User: user, Username: credentials.Username, Err: err}
	}
}
