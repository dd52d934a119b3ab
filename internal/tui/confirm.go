package tui

// confirmModel asks before a food entry is deleted.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(
		"Удалить запись \"" + fitText(m.message, 40) + "\" из дневника?\n\n" +
			helpStyle.Render("y: удалить │ n / esc: отмена"),
	)
}
