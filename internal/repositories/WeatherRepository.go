package repositories

import (
	"context"
	"net/http"

	"weather-card/config"
	"weather-card/internal/models"
	"weather-card/pkg/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherRepository is the remote source of current conditions and 3-hour forecast samples.
type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, loc models.Location) (models.CurrentConditions, error)
	FetchForecast(ctx context.Context, loc models.Location) ([]models.ForecastSample, error)
}

func InitWeatherRepository(cfg *config.Config, l *logger.Logger) (WeatherRepository, error) {
	owm := cfg.OpenWeatherMap

	return NewOpenWeatherMapRepository(owm.APIKey, l, &http.Client{Timeout: owm.Timeout},
		WithBaseURL(owm.BaseURL),
		WithRateLimit(owm.RatePerSecond, owm.Burst),
		WithBreaker(owm.BreakerFailures, owm.BreakerTimeout),
	)
}
