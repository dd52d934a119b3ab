package validators

import (
	"time"

	"github.com/MKhiriev/nutri-track/internal/utils"
	"github.com/MKhiriev/nutri-track/models"
)

// QueryParam is a raw query-string value together with its parameter name,
// which is reported as the field of a [ValidationError].
type QueryParam struct {
	Name  string
	Value string
}

// ParseDateRange turns optional start and end query parameters into an
// inclusive [models.DateRange]:
//   - a missing start means the beginning of the end's UTC day, or of now's
//     when neither bound is given;
//   - a missing end means the end of now's UTC day;
//   - a calendar-date end (YYYY-MM-DD) covers that whole day.
//
// Malformed values and an end before the start are validation errors.
func ParseDateRange(start, end QueryParam, now time.Time) (models.DateRange, error) {
	dateRange := models.DateRange{
		Start: utils.StartOfDay(now),
		End:   utils.EndOfDay(now),
	}

	if start.Value != "" {
		t, _, err := utils.ParseDate(start.Value)
		if err != nil {
			return models.DateRange{}, invalid(start.Name, ErrInvalidDateFormat)
		}
		dateRange.Start = t
	}

	if end.Value != "" {
		t, dateOnly, err := utils.ParseDate(end.Value)
		if err != nil {
			return models.DateRange{}, invalid(end.Name, ErrInvalidDateFormat)
		}
		if dateOnly {
			t = utils.EndOfDay(t)
		}
		dateRange.End = t
		if start.Value == "" {
			dateRange.Start = utils.StartOfDay(t)
		}
	}

	if dateRange.End.Before(dateRange.Start) {
		return models.DateRange{}, invalid(end.Name, ErrInvalidDateRangeBounds)
	}

	return dateRange, nil
}
