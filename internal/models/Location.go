package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type Coordinates struct {
	Lat float64 `json:"lat" example:"40.7128"`
	Lon float64 `json:"lon" example:"-74.006"`
}

// Location is either a city name or a coordinate pair, never both.
type Location struct {
	City        string       `json:"city,omitempty" example:"London"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func CityLocation(city string) Location {
	return Location{City: city}
}

func CoordinatesLocation(lat, lon float64) Location {
	return Location{Coordinates: &Coordinates{Lat: lat, Lon: lon}}
}

// IsZero reports whether neither a city nor coordinates are set. A blank city counts as unset.
func (l Location) IsZero() bool {
	return l.city() == "" && l.Coordinates == nil
}

func (l Location) city() string {
	return strings.TrimSpace(l.City)
}

// Key returns a label for logs and reports.
func (l Location) Key() string {
	if city := l.city(); city != "" {
		return city
	}
	if l.Coordinates != nil {
		return fmt.Sprintf("%.4f,%.4f", l.Coordinates.Lat, l.Coordinates.Lon)
	}
	return ""
}

// Query returns the OpenWeatherMap location parameters. A city name takes precedence.
func (l Location) Query() url.Values {
	values := url.Values{}
	switch {
	case l.city() != "":
		values.Set("q", l.city())
	case l.Coordinates != nil:
		values.Set("lat", strconv.FormatFloat(l.Coordinates.Lat, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(l.Coordinates.Lon, 'f', -1, 64))
	}
	return values
}
