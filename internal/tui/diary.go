// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/internal/validators"
	"github.com/MKhiriev/nutri-track/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	defaultCopyToClipboard = clipboard.WriteAll
	copyToClipboard        = defaultCopyToClipboard
)

type diaryFocus int

const (
	focusFood diaryFocus = iota
	focusExercises
)

type diaryOverlay int

const (
	overlayNone diaryOverlay = iota
	overlayFoodForm
	overlayExerciseForm
	overlayMetricsForm
	overlayAssistant
	overlayConfirm
	overlayError
)

// diaryModel shows one UTC day of the diary: food entries, exercises and the
// calorie summary. Forms and dialogs are drawn on top of it as overlays.
type diaryModel struct {
	ctx       context.Context
	api       adapter.ServerAdapter
	validator validators.Validator

	user  models.User
	today time.Time
	day   time.Time

	entries   []models.FoodEntry
	exercises []models.Exercise
	summary   models.Summary

	focus   diaryFocus
	idx     int
	loading bool
	spinner spinner.Model
	status  string

	overlay      diaryOverlay
	foodForm     foodFormModel
	exerciseForm exerciseFormModel
	metricsForm  metricsFormModel
	assistant    assistantModel
	confirm      confirmModel
	errOverlay   errorOverlayModel
	pendingID    int64

	logout bool
}

func newDiaryModel(ctx context.Context, api adapter.ServerAdapter, user models.User, now time.Time) diaryModel {
	today := utils.StartOfDay(now)

	return diaryModel{
		ctx:       ctx,
		api:       api,
		validator: validators.NewDiaryValidator(),
		user:      user,
		today:     today,
		day:       today,
		loading:   true,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m diaryModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadDay())
}

func (m diaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case diaryLoadedMsg:
		if !msg.day.Equal(m.day) {
			// The user has moved to another day meanwhile.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.entries, m.exercises, m.summary = msg.entries, msg.exercises, msg.summary
		m.idx = clampIndex(m.idx, m.currentLen())
		return m, nil

	case foodEntrySavedMsg:
		m.foodForm.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				return m.fail(msg.err)
			}
			m.foodForm.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.overlay = overlayNone
		m.status = "Запись \"" + msg.entry.Name + "\" добавлена"
		return m.reload()

	case exerciseSavedMsg:
		m.exerciseForm.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				return m.fail(msg.err)
			}
			m.exerciseForm.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.overlay = overlayNone
		m.status = "Тренировка \"" + msg.exercise.Type + "\" добавлена"
		return m.reload()

	case metricsSavedMsg:
		m.metricsForm.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				return m.fail(msg.err)
			}
			m.metricsForm.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.overlay = overlayNone
		m.user = msg.user
		m.status = "Параметры сохранены"
		return m.reload()

	case foodEntryDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.status = "Запись удалена"
		return m.reload()

	case assistantAnswerMsg:
		if errors.Is(msg.err, adapter.ErrUnauthorized) {
			return m.fail(msg.err)
		}
		var cmd tea.Cmd
		m.assistant, cmd = m.assistant.update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.updateOverlay(msg)
}

func (m diaryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = overlayNone
		}
		return m, nil

	case overlayConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			return m, m.cmdDeleteFoodEntry(m.pendingID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.overlay = overlayNone
		}
		return m, nil

	case overlayFoodForm, overlayExerciseForm, overlayMetricsForm:
		switch {
		case key.Matches(msg, keys.esc):
			m.overlay = overlayNone
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submitForm()
		}
		return m.updateOverlay(msg)

	case overlayAssistant:
		if key.Matches(msg, keys.esc) {
			m.overlay = overlayNone
			return m, nil
		}
		return m.updateOverlay(msg)
	}

	m.status = ""
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.prevDay):
		return m.showDay(m.day.AddDate(0, 0, -1))
	case key.Matches(msg, keys.nextDay):
		return m.showDay(m.day.AddDate(0, 0, 1))
	case key.Matches(msg, keys.today):
		return m.showDay(m.today)
	case key.Matches(msg, keys.reload):
		return m.reload()
	case key.Matches(msg, keys.tab):
		m.focus = 1 - m.focus
		m.idx = 0
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.currentLen()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.addFood):
		m.foodForm = newFoodFormModel(m.day)
		m.overlay = overlayFoodForm
		return m, textinput.Blink
	case key.Matches(msg, keys.addExercise):
		m.exerciseForm = newExerciseFormModel(m.day)
		m.overlay = overlayExerciseForm
		return m, textinput.Blink
	case key.Matches(msg, keys.metrics):
		m.metricsForm = newMetricsFormModel(m.user)
		m.overlay = overlayMetricsForm
		return m, textinput.Blink
	case key.Matches(msg, keys.assistant):
		m.assistant = newAssistantModel(m.ctx, m.api)
		m.overlay = overlayAssistant
		return m, textarea.Blink
	case key.Matches(msg, keys.delete):
		if m.focus != focusFood || len(m.entries) == 0 {
			return m, nil
		}
		entry := m.entries[m.idx]
		m.pendingID = entry.ID
		m.confirm = confirmModel{message: entry.Name}
		m.overlay = overlayConfirm
	case key.Matches(msg, keys.copy):
		if err := copyToClipboard(summaryClipboardText(m.day, m.summary)); err != nil {
			return m.fail(fmt.Errorf("не удалось скопировать: %w", err))
		}
		m.status = "Сводка скопирована в буфер обмена"
	}

	return m, nil
}

func (m diaryModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.overlay {
	case overlayFoodForm:
		m.foodForm.formModel, cmd = m.foodForm.update(msg)
	case overlayExerciseForm:
		m.exerciseForm.formModel, cmd = m.exerciseForm.update(msg)
	case overlayMetricsForm:
		m.metricsForm.formModel, cmd = m.metricsForm.update(msg)
	case overlayAssistant:
		m.assistant, cmd = m.assistant.update(msg)
	}
	return m, cmd
}

// submitForm parses and validates the open form before calling the server.
func (m diaryModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayFoodForm:
		if m.foodForm.submitting {
			return m, nil
		}
		request, err := m.foodForm.toRequest()
		if err == nil {
			err = m.validator.Validate(m.ctx, request)
		}
		if err != nil {
			m.foodForm.errMsg = humanizeError(err)
			return m, nil
		}
		m.foodForm.errMsg = ""
		m.foodForm.submitting = true
		return m, m.cmdAddFoodEntry(request)

	case overlayExerciseForm:
		if m.exerciseForm.submitting {
			return m, nil
		}
		request, err := m.exerciseForm.toRequest()
		if err == nil {
			err = m.validator.Validate(m.ctx, request)
		}
		if err != nil {
			m.exerciseForm.errMsg = humanizeError(err)
			return m, nil
		}
		m.exerciseForm.errMsg = ""
		m.exerciseForm.submitting = true
		return m, m.cmdAddExercise(request)

	case overlayMetricsForm:
		if m.metricsForm.submitting {
			return m, nil
		}
		metrics, err := m.metricsForm.toMetrics()
		if err == nil {
			err = m.validator.Validate(m.ctx, metrics)
		}
		if err != nil {
			m.metricsForm.errMsg = humanizeError(err)
			return m, nil
		}
		m.metricsForm.errMsg = ""
		m.metricsForm.submitting = true
		return m, m.cmdUpdateMetrics(metrics)
	}

	return m, nil
}

// fail ends the main loop with logout when the session is gone, otherwise
// shows the error in a dialog.
func (m diaryModel) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrUnauthorized) {
		m.logout = true
		return m, tea.Quit
	}
	m.errOverlay = errorOverlayModel{message: humanizeError(err)}
	m.overlay = overlayError
	return m, nil
}

func (m diaryModel) showDay(day time.Time) (tea.Model, tea.Cmd) {
	m.day = utils.StartOfDay(day)
	m.idx = 0
	m.entries, m.exercises, m.summary = nil, nil, models.Summary{}
	return m.reload()
}

func (m diaryModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadDay())
}

func (m diaryModel) currentLen() int {
	if m.focus == focusFood {
		return len(m.entries)
	}
	return len(m.exercises)
}

func clampIndex(idx, n int) int {
	switch {
	case n == 0 || idx < 0:
		return 0
	case idx >= n:
		return n - 1
	}
	return idx
}

func (m diaryModel) cmdLoadDay() tea.Cmd {
	ctx, api, day := m.ctx, m.api, m.day
	return func() tea.Msg {
		dateRange := models.DateRange{Start: day, End: utils.EndOfDay(day)}
		msg := diaryLoadedMsg{day: day}

		if msg.entries, msg.err = api.ListFoodEntries(ctx, dateRange); msg.err != nil {
			return msg
		}
		if msg.exercises, msg.err = api.ListExercises(ctx, dateRange); msg.err != nil {
			return msg
		}
		msg.summary, msg.err = api.Summary(ctx, dateRange)
		return msg
	}
}

func (m diaryModel) cmdAddFoodEntry(request models.FoodEntryRequest) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		entry, err := api.AddFoodEntry(ctx, request)
		return foodEntrySavedMsg{entry: entry, err: err}
	}
}

func (m diaryModel) cmdAddExercise(request models.ExerciseRequest) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		exercise, err := api.AddExercise(ctx, request)
		return exerciseSavedMsg{exercise: exercise, err: err}
	}
}

func (m diaryModel) cmdUpdateMetrics(metrics models.UserMetrics) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		user, err := api.UpdateMetrics(ctx, metrics)
		return metricsSavedMsg{user: user, err: err}
	}
}

func (m diaryModel) cmdDeleteFoodEntry(id int64) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return foodEntryDeletedMsg{err: api.DeleteFoodEntry(ctx, id)}
	}
}

func (m diaryModel) View() string {
	switch m.overlay {
	case overlayFoodForm:
		return m.foodForm.View()
	case overlayExerciseForm:
		return m.exerciseForm.View()
	case overlayMetricsForm:
		return m.metricsForm.View()
	case overlayAssistant:
		return m.assistant.View()
	case overlayConfirm:
		return appStyle.Render(m.confirm.View())
	case overlayError:
		return appStyle.Render(m.errOverlay.View())
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...\n\n")
	}

	b.WriteString(m.renderFoodEntries())
	b.WriteString("\n")
	b.WriteString(m.renderExercises())
	b.WriteString("\n")
	b.WriteString(renderSummary(m.summary))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	title := fmt.Sprintf("ДНЕВНИК · %s · %s", m.user.Username, m.day.Format(time.DateOnly))
	hotKeys := "←/→: день │ t: сегодня │ tab: раздел │ f: еда │ e: тренировка │ d: удалить\n" +
		"m: параметры │ a: ассистент │ c: копировать сводку │ r: обновить │ l: выйти из аккаунта │ q: выход"
	return renderPage(title, b.String(), hotKeys)
}

func (m diaryModel) renderFoodEntries() string {
	var b strings.Builder
	b.WriteString(sectionTitle("Питание", m.focus == focusFood))
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString("  нет записей\n")
		return b.String()
	}

	for i, e := range m.entries {
		b.WriteString(fmt.Sprintf("%s %s %-10s %-28s %s\n",
			m.cursor(focusFood, i),
			e.Date.UTC().Format("15:04"),
			e.MealType,
			fitText(e.Name, 28),
			formatKcal(e.Calories),
		))
	}
	return b.String()
}

func (m diaryModel) renderExercises() string {
	var b strings.Builder
	b.WriteString(sectionTitle("Тренировки", m.focus == focusExercises))
	b.WriteString("\n")
	if len(m.exercises) == 0 {
		b.WriteString("  нет записей\n")
		return b.String()
	}

	for i, e := range m.exercises {
		b.WriteString(fmt.Sprintf("%s %-28s %4d мин %s\n",
			m.cursor(focusExercises, i),
			fitText(e.Type, 28),
			e.Duration,
			formatKcal(e.CaloriesBurned),
		))
	}
	return b.String()
}

func (m diaryModel) cursor(section diaryFocus, i int) string {
	if m.focus == section && m.idx == i {
		return ">"
	}
	return " "
}

func sectionTitle(title string, active bool) string {
	if active {
		return titleStyle.Render("▸ " + title)
	}
	return lipgloss.NewStyle().Faint(true).Render("  " + title)
}
