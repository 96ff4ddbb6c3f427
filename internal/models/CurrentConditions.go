package models

import "time"

// CurrentConditions is the current-weather payload in source units (Kelvin, m/s, mb, metres).
type CurrentConditions struct {
	Name       string    `json:"name" example:"London"`
	Country    string    `json:"country" example:"GB"`
	Temp       float64   `json:"temp" example:"289.15"`
	FeelsLike  float64   `json:"feels_like" example:"288.4"`
	Humidity   int       `json:"humidity" example:"72"`
	WindSpeed  float64   `json:"wind_speed" example:"4.1"`
	Pressure   float64   `json:"pressure" example:"1012"`
	Visibility float64   `json:"visibility" example:"10000"`
	Condition  string    `json:"condition" example:"Clouds"`
	Icon       string    `json:"icon" example:"04d"`
	ObservedAt time.Time `json:"observed_at"`
}
