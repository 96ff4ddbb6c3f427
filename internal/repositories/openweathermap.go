package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-card/internal/models"
	"weather-card/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

	currentPath  = "/weather"
	forecastPath = "/forecast"

	defaultRatePerSecond   = 1
	defaultBurst           = 2
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = time.Minute
)

var ErrEmptyAPIKey = errors.New("API key cannot be empty")

// StatusError is a non-200 answer from the API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Code, e.Message)
}

// upstreamFailure reports whether err says something about the API's health.
// Client errors such as an unknown city do not, nor does a canceled caller.
func upstreamFailure(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= http.StatusInternalServerError || se.Code == http.StatusTooManyRequests
	}
	return err != nil
}

type OpenWeatherMapRepository struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	l          *logger.Logger

	ratePerSecond   float64
	burst           int
	breakerFailures uint32
	breakerTimeout  time.Duration
}

type Option func(*OpenWeatherMapRepository)

func WithBaseURL(baseURL string) Option {
	return func(o *OpenWeatherMapRepository) {
		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithRateLimit caps outbound requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *OpenWeatherMapRepository) {
		if rps > 0 {
			o.ratePerSecond = rps
		}
		if burst > 0 {
			o.burst = burst
		}
	}
}

// WithBreaker opens the circuit after failures consecutive errors and keeps it open for timeout.
func WithBreaker(failures uint32, timeout time.Duration) Option {
	return func(o *OpenWeatherMapRepository) {
		if failures > 0 {
			o.breakerFailures = failures
		}
		if timeout > 0 {
			o.breakerTimeout = timeout
		}
	}
}

func NewOpenWeatherMapRepository(apiKey string, l *logger.Logger, httpClient HTTPClient, opts ...Option) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrEmptyAPIKey
	}

	o := &OpenWeatherMapRepository{
		baseURL:         OpenWeatherMapBaseURL,
		apiKey:          apiKey,
		httpClient:      httpClient,
		l:               l,
		ratePerSecond:   defaultRatePerSecond,
		burst:           defaultBurst,
		breakerFailures: defaultBreakerFailures,
		breakerTimeout:  defaultBreakerTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	o.limiter = rate.NewLimiter(rate.Limit(o.ratePerSecond), o.burst)
	o.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    o.Name(),
		Timeout: o.breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= o.breakerFailures
		},
		IsSuccessful: func(err error) bool {
			return !upstreamFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			o.l.Warning("circuit breaker state changed", map[string]any{
				"repo": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})

	return o, nil
}

func (o *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

type currentResponse struct {
	Dt   int64  `json:"dt"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Weather    []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
	} `json:"list"`
}

type apiError struct {
	Cod     any    `json:"cod"` // int or string depending on endpoint
	Message string `json:"message"`
}

func (o *OpenWeatherMapRepository) FetchCurrent(ctx context.Context, loc models.Location) (models.CurrentConditions, error) {
	var response currentResponse
	if err := o.get(ctx, currentPath, loc, &response); err != nil {
		return models.CurrentConditions{}, err
	}

	current := models.CurrentConditions{
		Name:       response.Name,
		Country:    response.Sys.Country,
		Temp:       response.Main.Temp,
		FeelsLike:  response.Main.FeelsLike,
		Humidity:   response.Main.Humidity,
		WindSpeed:  response.Wind.Speed,
		Pressure:   response.Main.Pressure,
		Visibility: response.Visibility,
		ObservedAt: time.Unix(response.Dt, 0).UTC(),
	}
	if len(response.Weather) > 0 {
		current.Condition = response.Weather[0].Main
		current.Icon = response.Weather[0].Icon
	}

	return current, nil
}

func (o *OpenWeatherMapRepository) FetchForecast(ctx context.Context, loc models.Location) ([]models.ForecastSample, error) {
	var response forecastResponse
	if err := o.get(ctx, forecastPath, loc, &response); err != nil {
		return nil, err
	}

	o.l.Debug("parsed forecast response", map[string]any{
		"location": loc.Key(),
		"items":    len(response.List),
	})

	samples := make([]models.ForecastSample, 0, len(response.List))
	for _, item := range response.List {
		samples = append(samples, models.ForecastSample{
			Timestamp: time.Unix(item.Dt, 0).UTC(),
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
			Humidity:  item.Main.Humidity,
		})
	}

	return samples, nil
}

// get performs one throttled, breaker-guarded GET and decodes the JSON body into out.
func (o *OpenWeatherMapRepository) get(ctx context.Context, path string, loc models.Location, out any) error {
	if loc.IsZero() {
		return errors.New("location is empty")
	}

	params := loc.Query()
	params.Set("appid", o.apiKey)
	url := o.baseURL + path + "?" + params.Encode()

	if err := o.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	o.l.Info("making openweathermap API request", map[string]any{
		"endpoint": path,
		"location": loc.Key(),
	})

	result, err := o.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := o.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to do request: %w", err)
		}
		defer resp.Body.Close()

		o.l.Info("received openweathermap API response", map[string]any{
			"endpoint":   path,
			"status":     resp.StatusCode,
			"statusText": resp.Status,
		})

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			statusErr := &StatusError{Code: resp.StatusCode, Message: resp.Status}
			var apiErr apiError
			if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Message != "" {
				statusErr.Message = apiErr.Message
			}
			return nil, statusErr
		}

		return body, nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(result.([]byte), out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
