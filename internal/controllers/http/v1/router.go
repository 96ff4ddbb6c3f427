package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-card/internal/services/weather"
	"weather-card/pkg/logger"
)

type routes struct {
	service  *weather.WeatherService
	themes   weather.ThemeSource
	validate *validator.Validate
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	themes weather.ThemeSource,
	l *logger.Logger,
) {
	r := &routes{
		service:  weatherService,
		themes:   themes,
		validate: validator.New(),
		l:        l,
	}

	// Swagger documentation, served from the document registered by the docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/weather", r.handleWeatherCall)
	app.Get("/theme", r.handleThemeCall)
}
