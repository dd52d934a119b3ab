package tui

import (
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/nutri-track/models"
)

const (
	exerciseType = iota
	exerciseDuration
	exerciseCalories
)

var errDurationNotInteger = errors.New("длительность должна быть целым числом минут")

type exerciseFormModel struct {
	formModel
	day time.Time
}

func newExerciseFormModel(day time.Time) exerciseFormModel {
	f := newFormModel(
		"НОВАЯ ТРЕНИРОВКА · "+day.Format(time.DateOnly),
		[]string{"Вид", "Минуты", "Сожжено ккал"},
		[]string{"running", "30", "300"},
	)
	return exerciseFormModel{formModel: f, day: day}
}

func (f exerciseFormModel) toRequest() (models.ExerciseRequest, error) {
	kind := f.value(exerciseType)

	duration, err := strconv.Atoi(f.value(exerciseDuration))
	if err != nil {
		return models.ExerciseRequest{}, errDurationNotInteger
	}
	burned, err := strconv.Atoi(f.value(exerciseCalories))
	if err != nil {
		return models.ExerciseRequest{}, errCaloriesNotInteger
	}
	date := f.day.Format(time.DateOnly)

	return models.ExerciseRequest{
		Type:           &kind,
		Duration:       &duration,
		CaloriesBurned: &burned,
		Date:           &date,
	}, nil
}
