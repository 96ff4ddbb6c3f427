package models

import "time"

// ForecastSample is one 3-hour forecast reading, temperatures in Kelvin.
type ForecastSample struct {
	Timestamp time.Time `json:"timestamp"`
	TempMin   float64   `json:"temp_min" example:"285.2"`
	TempMax   float64   `json:"temp_max" example:"291.7"`
	Humidity  int       `json:"humidity" example:"64"`
}

// DailyForecast aggregates every sample of one calendar day.
type DailyForecast struct {
	Date     time.Time `json:"date"`
	TempMin  float64   `json:"temp_min" example:"283.9"`
	TempMax  float64   `json:"temp_max" example:"294.1"`
	Humidity int       `json:"humidity" example:"64"`
}
