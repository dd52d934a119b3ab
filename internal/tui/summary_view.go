package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/nutri-track/models"
)

func renderSummary(s models.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Съедено: %s │ Сожжено: %s │ Итого: %s\n",
		formatKcal(s.CaloriesIn), formatKcal(s.CaloriesBurned), formatKcal(s.NetCalories)))
	b.WriteString(fmt.Sprintf("BMR: %s │ TDEE: %s │ Баланс: %s",
		optionalKcal(s.BMR), optionalKcal(s.TDEE), optionalKcal(s.CalorieBalance)))
	if s.BMI != nil {
		b.WriteString(fmt.Sprintf("\nИМТ: %.1f (%s)", *s.BMI, s.BMICategory))
	}

	return b.String()
}

// summaryClipboardText is the plain-text day report put on the clipboard.
func summaryClipboardText(day time.Time, s models.Summary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("NutriTrack %s\n", day.Format(time.DateOnly)))
	b.WriteString(fmt.Sprintf("Съедено: %d ккал (%d записей)\n", s.CaloriesIn, s.FoodEntries))
	b.WriteString(fmt.Sprintf("Сожжено: %d ккал (%d тренировок)\n", s.CaloriesBurned, s.Exercises))
	b.WriteString(fmt.Sprintf("Итого: %d ккал", s.NetCalories))
	if s.TDEE != nil && s.CalorieBalance != nil {
		b.WriteString(fmt.Sprintf("\nTDEE: %d ккал, баланс: %d ккал", *s.TDEE, *s.CalorieBalance))
	}

	return b.String()
}
