package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/nutri-track/models"
)

const (
	foodName = iota
	foodCalories
	foodMealType
	foodTime
)

var (
	errCaloriesNotInteger = errors.New("калории должны быть целым числом")
	errTimeFormat         = errors.New("время должно быть в формате ЧЧ:ММ")
)

type foodFormModel struct {
	formModel
	day time.Time
}

func newFoodFormModel(day time.Time) foodFormModel {
	f := newFormModel(
		"НОВАЯ ЗАПИСЬ ПИТАНИЯ · "+day.Format(time.DateOnly),
		[]string{"Блюдо", "Калории", "Приём пищи", "Время"},
		[]string{"apple", "95", "breakfast / lunch / dinner / snack", "ЧЧ:ММ (необязательно)"},
	)
	f.inputs[foodMealType].SetValue("breakfast")

	return foodFormModel{formModel: f, day: day}
}

// toRequest builds the request for the form's day. Without a time the entry
// is dated at the start of that day.
func (f foodFormModel) toRequest() (models.FoodEntryRequest, error) {
	name := f.value(foodName)
	mealType := f.value(foodMealType)

	calories, err := strconv.Atoi(f.value(foodCalories))
	if err != nil {
		return models.FoodEntryRequest{}, errCaloriesNotInteger
	}

	date, err := dateWithTime(f.day, f.value(foodTime))
	if err != nil {
		return models.FoodEntryRequest{}, err
	}

	return models.FoodEntryRequest{
		Name:     &name,
		Calories: &calories,
		MealType: &mealType,
		Date:     &date,
	}, nil
}

// dateWithTime formats day as YYYY-MM-DD, or as an RFC 3339 UTC timestamp
// when clock ("HH:MM") is given.
func dateWithTime(day time.Time, clock string) (string, error) {
	if clock == "" {
		return day.Format(time.DateOnly), nil
	}

	t, err := time.Parse("15:04", clock)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errTimeFormat, clock)
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return at.Format(time.RFC3339), nil
}
