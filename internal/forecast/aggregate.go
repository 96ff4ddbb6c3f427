// Package forecast folds 3-hour forecast samples into per-day records.
package forecast

import (
	"time"

	"weather-card/internal/models"
)

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}

// Aggregate returns one DailyForecast per calendar date found in samples, in the
// order each date was first seen. Dates are taken in loc; nil means UTC.
//
// Humidity is the humidity of the first sample of the day and is not updated by
// later samples. The upstream display behaved this way and it is kept as-is.
func Aggregate(samples []models.ForecastSample, loc *time.Location) []models.DailyForecast {
	if loc == nil {
		loc = time.UTC
	}

	days := make([]models.DailyForecast, 0, len(samples)/8+1)
	index := make(map[dayKey]int, len(samples)/8+1)

	for _, s := range samples {
		local := s.Timestamp.In(loc)
		key := keyOf(local)

		i, ok := index[key]
		if !ok {
			index[key] = len(days)
			days = append(days, models.DailyForecast{
				Date:     time.Date(key.year, key.month, key.day, 0, 0, 0, 0, loc),
				TempMin:  s.TempMin,
				TempMax:  s.TempMax,
				Humidity: s.Humidity,
			})
			continue
		}

		days[i].TempMin = min(days[i].TempMin, s.TempMin)
		days[i].TempMax = max(days[i].TempMax, s.TempMax)
	}

	return days
}
