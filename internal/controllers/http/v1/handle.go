package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-card/internal/models"
	"weather-card/internal/services/weather"
)

const dataUnavailableMessage = "Error fetching weather data."

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing location: pass city or lat and lon"`
}

// ThemeResponse represents the current display theme
type ThemeResponse struct {
	Theme string `json:"theme" example:"morning"`
}

type locationQuery struct {
	City string `query:"city" validate:"omitempty,max=100"`
	Lat  string `query:"lat" validate:"omitempty,latitude"`
	Lon  string `query:"lon" validate:"omitempty,longitude"`
}

// toLocation picks the city when present, otherwise the coordinate pair.
// A blank city is treated as absent.
func (q locationQuery) toLocation() (models.Location, error) {
	if city := strings.TrimSpace(q.City); city != "" {
		return models.CityLocation(city), nil
	}

	if q.Lat == "" && q.Lon == "" {
		return models.Location{}, errors.New("Missing location: pass city or lat and lon")
	}
	if q.Lat == "" {
		return models.Location{}, errors.New("Missing required parameter: lat")
	}
	if q.Lon == "" {
		return models.Location{}, errors.New("Missing required parameter: lon")
	}

	lat, err := strconv.ParseFloat(q.Lat, 64)
	if err != nil {
		return models.Location{}, errors.New("Invalid latitude format")
	}
	lon, err := strconv.ParseFloat(q.Lon, 64)
	if err != nil {
		return models.Location{}, errors.New("Invalid longitude format")
	}

	return models.CoordinatesLocation(lat, lon), nil
}

// GetWeatherReport godoc
// @Summary Get current weather and daily forecast
// @Description Fetches current conditions and the 5-day forecast for a city or a coordinate pair and returns them ready for display
// @Tags Weather
// @Accept json
// @Produce json
// @Param city query string false "City name; takes precedence over lat/lon" example(London)
// @Param lat query number false "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(51.5072)
// @Param lon query number false "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-0.1276)
// @Success 200 {object} models.Report "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - missing or invalid location"
// @Failure 503 {object} ErrorResponse "Weather data unavailable"
// @Router /weather [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/weather?city=London"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	var q locationQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid query parameters",
		})
	}

	if err := r.validate.Struct(q); err != nil {
		r.l.Warning("invalid location query", map[string]any{
			"city": q.City,
			"lat":  q.Lat,
			"lon":  q.Lon,
			"err":  err.Error(),
		})
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid location: " + err.Error(),
		})
	}

	loc, err := q.toLocation()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	report, err := r.service.FetchReport(c.UserContext(), loc)
	switch {
	case errors.Is(err, weather.ErrNoLocation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	case err != nil:
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: dataUnavailableMessage,
		})
	}

	return c.JSON(report)
}

// GetTheme godoc
// @Summary Get the display theme
// @Description Returns the time-of-day theme (morning, noon, light-night, dark-night) for the configured display timezone
// @Tags Display
// @Produce json
// @Success 200 {object} ThemeResponse
// @Router /theme [get]
func (r *routes) handleThemeCall(c *fiber.Ctx) error {
	return c.JSON(ThemeResponse{
		Theme: string(r.themes.Current()),
	})
}
