package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formModel is a column of labelled text inputs with tab navigation. The
// concrete forms build their request from the input values.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string
}

func newFormModel(title string, labels, placeholders []string) formModel {
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 32
		inputs[i].CharLimit = 128
		if i < len(placeholders) {
			inputs[i].Placeholder = placeholders[i]
		}
	}
	inputs[0].Focus()

	return formModel{title: title, labels: labels, inputs: inputs}
}

func (f formModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// update handles focus keys and feeds everything else to the focused input.
// Enter and esc are left to the owner of the form.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			f.focus = focusInput(f.inputs, f.focus, 1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			f.focus = focusInput(f.inputs, f.focus, -1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) View() string {
	labelWidth := 0
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for i, l := range f.labels {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", labelWidth, l, f.inputs[i].View()))
	}

	if f.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab/↓: след. поле │ enter: сохранить")
}
