package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type assistantMode int

const (
	modeChat assistantMode = iota
	modeEstimate
)

// assistantModel asks the server-side assistant either a free-form question
// or for a calorie estimate of a dish. Tab switches between the two.
type assistantModel struct {
	ctx       context.Context
	api       adapter.ServerAdapter
	validator validators.Validator

	mode    assistantMode
	prompt  textarea.Model
	food    textinput.Model
	portion textinput.Model
	focus   int

	waiting bool
	answer  string
	isDemo  bool
	notice  string
	errMsg  string
	status  string
}

func newAssistantModel(ctx context.Context, api adapter.ServerAdapter) assistantModel {
	prompt := textarea.New()
	prompt.Placeholder = "Что съесть на ужин, если осталось 500 ккал?"
	prompt.SetWidth(60)
	prompt.SetHeight(4)
	prompt.Focus()

	food := textinput.New()
	food.Placeholder = "банан"
	food.Width = 32
	portion := textinput.New()
	portion.Placeholder = "1 шт. (необязательно)"
	portion.Width = 32

	return assistantModel{
		ctx:       ctx,
		api:       api,
		validator: validators.NewDiaryValidator(),
		prompt:    prompt,
		food:      food,
		portion:   portion,
	}
}

func (m assistantModel) update(msg tea.Msg) (assistantModel, tea.Cmd) {
	if answer, ok := msg.(assistantAnswerMsg); ok {
		m.waiting = false
		if answer.err != nil {
			m.errMsg = humanizeError(answer.err)
			return m, nil
		}
		m.answer, m.isDemo, m.notice = answer.text, answer.isDemo, answer.notice
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.tab) && m.mode == modeChat:
		m.setMode(modeEstimate)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.backtab) && m.mode == modeEstimate:
		m.setMode(modeChat)
		return m, textarea.Blink
	case key.Matches(keyMsg, keys.tab) && m.mode == modeEstimate:
		m.focus = 1 - m.focus
		m.focusEstimateInput()
		return m, nil
	case keyMsg.String() == "ctrl+y":
		if m.answer == "" {
			return m, nil
		}
		if err := copyToClipboard(m.answer); err != nil {
			m.errMsg = "Не удалось скопировать: " + err.Error()
			return m, nil
		}
		m.status = "Ответ скопирован"
		return m, nil
	case key.Matches(keyMsg, keys.submit),
		key.Matches(keyMsg, keys.enter) && m.mode == modeEstimate:
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m *assistantModel) setMode(mode assistantMode) {
	m.mode = mode
	m.errMsg, m.status = "", ""
	if mode == modeChat {
		m.food.Blur()
		m.portion.Blur()
		m.prompt.Focus()
		return
	}
	m.prompt.Blur()
	m.focus = 0
	m.focusEstimateInput()
}

func (m *assistantModel) focusEstimateInput() {
	if m.focus == 0 {
		m.portion.Blur()
		m.food.Focus()
		return
	}
	m.food.Blur()
	m.portion.Focus()
}

func (m assistantModel) updateInputs(msg tea.Msg) (assistantModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.mode == modeChat:
		m.prompt, cmd = m.prompt.Update(msg)
	case m.focus == 0:
		m.food, cmd = m.food.Update(msg)
	default:
		m.portion, cmd = m.portion.Update(msg)
	}
	return m, cmd
}

func (m assistantModel) submit() (assistantModel, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	m.errMsg, m.status = "", ""

	if m.mode == modeChat {
		request := models.ChatRequest{Prompt: strings.TrimSpace(m.prompt.Value())}
		if err := m.validator.Validate(m.ctx, request); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.waiting = true
		return m, m.cmdChat(request.Prompt)
	}

	request := models.CalorieEstimateRequest{
		Food:    strings.TrimSpace(m.food.Value()),
		Portion: strings.TrimSpace(m.portion.Value()),
	}
	if err := m.validator.Validate(m.ctx, request); err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}
	m.waiting = true
	return m, m.cmdEstimate(request)
}

func (m assistantModel) cmdChat(prompt string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		resp, err := api.Chat(ctx, prompt)
		return assistantAnswerMsg{text: resp.Response, isDemo: resp.IsDemo, notice: resp.Error, err: err}
	}
}

func (m assistantModel) cmdEstimate(request models.CalorieEstimateRequest) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		estimate, err := api.EstimateCalories(ctx, request)
		return assistantAnswerMsg{
			text:   "≈ " + strconv.Itoa(estimate.Calories) + " ккал",
			isDemo: estimate.IsDemo,
			notice: estimate.Error,
			err:    err,
		}
	}
}

func (m assistantModel) View() string {
	var b strings.Builder

	if m.mode == modeChat {
		b.WriteString("Режим: [Вопрос] Оценка калорий\n\n")
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	} else {
		b.WriteString("Режим: Вопрос [Оценка калорий]\n\n")
		b.WriteString("Блюдо  │ [" + m.food.View() + "]\n")
		b.WriteString("Порция │ [" + m.portion.View() + "]\n")
	}

	switch {
	case m.waiting:
		b.WriteString("\n[Ожидание ответа...]\n")
	case m.answer != "":
		b.WriteString("\n")
		b.WriteString(m.answer)
		b.WriteString("\n")
		if m.isDemo {
			b.WriteString(demoStyle.Render("Демо-ответ: ассистент не настроен на сервере"))
			b.WriteString("\n")
		}
		if m.notice != "" {
			b.WriteString(helpStyle.Render(m.notice))
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	hotKeys := "esc: назад │ ctrl+s: отправить │ tab: оценка калорий │ ctrl+y: копировать ответ"
	if m.mode == modeEstimate {
		hotKeys = "esc: назад │ enter: оценить │ tab: поле │ shift+tab: вопрос │ ctrl+y: копировать ответ"
	}
	return renderPage("АССИСТЕНТ", strings.TrimRight(b.String(), "\n"), hotKeys)
}
