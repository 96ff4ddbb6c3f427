// Package units converts OpenWeatherMap standard units into display units.
package units

import "math"

const (
	absoluteZeroCelsius = 273.15
	mphPerMetersPerSec  = 2.23694
)

// ToCelsius converts Kelvin to whole degrees Celsius. Halves round up.
func ToCelsius(kelvin float64) int {
	return roundHalfUp(kelvin - absoluteZeroCelsius)
}

// roundHalfUp rounds halves toward +Inf, so -0.5 becomes 0. math.Round
// rounds them away from zero instead.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ToMilesPerHour converts m/s to mph rounded to two decimals.
func ToMilesPerHour(metersPerSecond float64) float64 {
	return math.Round(metersPerSecond*mphPerMetersPerSec*100) / 100
}

// MetersToKilometers converts a visibility in metres to kilometres.
func MetersToKilometers(meters float64) float64 {
	return meters / 1000
}
