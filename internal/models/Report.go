package models

import "time"

// Report is the display-ready result of one weather query.
type Report struct {
	QueryID     string      `json:"query_id" example:"7f1c3f2e-8a41-4c4b-9d1e-2a6b0b1c9f10"`
	Location    string      `json:"location" example:"London"`
	Current     CurrentView `json:"current"`
	Daily       []DailyView `json:"daily"`
	Theme       string      `json:"theme" example:"noon"`
	GeneratedAt time.Time   `json:"generated_at"`
}

type CurrentView struct {
	Name         string  `json:"name" example:"London"`
	Country      string  `json:"country" example:"GB"`
	TemperatureC int     `json:"temperature_c" example:"16"`
	FeelsLikeC   int     `json:"feels_like_c" example:"15"`
	Humidity     int     `json:"humidity" example:"72"`
	WindMPH      float64 `json:"wind_mph" example:"9.17"`
	PressureMB   float64 `json:"pressure_mb" example:"1012"`
	VisibilityKM float64 `json:"visibility_km" example:"10"`
	Condition    string  `json:"condition" example:"Clouds"`
	IconURL      string  `json:"icon_url" example:"https://openweathermap.org/img/wn/04d.png"`
	Weekday      string  `json:"weekday" example:"Tue"`
	Clock        string  `json:"clock" example:"1:05 PM"`
	Date         string  `json:"date" example:"4 Jun 2024"`
}

type DailyView struct {
	Date     string `json:"date" example:"2024-06-04"`
	Weekday  string `json:"weekday" example:"Tue"`
	TempMinC int    `json:"temp_min_c" example:"11"`
	TempMaxC int    `json:"temp_max_c" example:"21"`
	Humidity int    `json:"humidity" example:"64"`
}
