package tui

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/nutri-track/models"
)

const (
	metricHeight = iota
	metricWeight
	metricAge
	metricGender
	metricActivity
)

type metricsFormModel struct {
	formModel
}

// newMetricsFormModel pre-fills the inputs with the metrics already stored.
func newMetricsFormModel(user models.User) metricsFormModel {
	f := newFormModel(
		"ПАРАМЕТРЫ ТЕЛА",
		[]string{"Рост, см", "Вес, кг", "Возраст", "Пол", "Активность"},
		[]string{"180", "80", "30", "male / female", "sedentary / light / moderate / active / veryActive"},
	)

	if user.Height != nil {
		f.inputs[metricHeight].SetValue(strconv.FormatFloat(*user.Height, 'f', -1, 64))
	}
	if user.Weight != nil {
		f.inputs[metricWeight].SetValue(strconv.FormatFloat(*user.Weight, 'f', -1, 64))
	}
	if user.Age != nil {
		f.inputs[metricAge].SetValue(strconv.Itoa(*user.Age))
	}
	if user.Gender != nil {
		f.inputs[metricGender].SetValue(string(*user.Gender))
	}
	if user.ActivityLevel != nil {
		f.inputs[metricActivity].SetValue(string(*user.ActivityLevel))
	}

	return metricsFormModel{formModel: f}
}

// toMetrics sends only the filled inputs; empty ones leave the stored value
// untouched.
func (f metricsFormModel) toMetrics() (models.UserMetrics, error) {
	var metrics models.UserMetrics

	if v := f.value(metricHeight); v != "" {
		height, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.UserMetrics{}, fmt.Errorf("рост должен быть числом: %q", v)
		}
		metrics.Height = &height
	}
	if v := f.value(metricWeight); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.UserMetrics{}, fmt.Errorf("вес должен быть числом: %q", v)
		}
		metrics.Weight = &weight
	}
	if v := f.value(metricAge); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return models.UserMetrics{}, fmt.Errorf("возраст должен быть целым числом: %q", v)
		}
		metrics.Age = &age
	}
	if v := f.value(metricGender); v != "" {
		gender := models.Gender(v)
		metrics.Gender = &gender
	}
	if v := f.value(metricActivity); v != "" {
		level := models.ActivityLevel(v)
		metrics.ActivityLevel = &level
	}

	return metrics, nil
}
