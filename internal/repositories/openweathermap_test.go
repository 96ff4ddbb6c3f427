package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-card/internal/models"
	"weather-card/pkg/logger"
)

const testAPIKey = "test-key"

const currentJSON = `{
	"dt": 1717502400,
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 289.15, "feels_like": 288.4, "humidity": 72, "pressure": 1012},
	"wind": {"speed": 4.1},
	"visibility": 10000,
	"weather": [{"main": "Clouds", "icon": "04d"}]
}`

const forecastJSON = `{
	"list": [
		{"dt": 1717491600, "dt_txt": "2024-06-04 09:00:00", "main": {"temp_min": 285.2, "temp_max": 287.9, "humidity": 64}},
		{"dt": 1717502400, "dt_txt": "2024-06-04 12:00:00", "main": {"temp_min": 288.1, "temp_max": 291.7, "humidity": 58}}
	]
}`

func newTestRepository(t *testing.T, baseURL string, opts ...Option) *OpenWeatherMapRepository {
	t.Helper()

	opts = append([]Option{WithBaseURL(baseURL), WithRateLimit(1000, 10)}, opts...)
	repo, err := NewOpenWeatherMapRepository(testAPIKey, logger.NewZapLogger("test-app", io.Discard), http.DefaultClient, opts...)
	require.NoError(t, err)
	return repo
}

func TestNewOpenWeatherMapRepository_EmptyAPIKey(t *testing.T) {
	_, err := NewOpenWeatherMapRepository("  ", logger.NewZapLogger("test-app", io.Discard), http.DefaultClient)
	assert.ErrorIs(t, err, ErrEmptyAPIKey)
}

func TestOpenWeatherMapRepository_Name(t *testing.T) {
	repo := newTestRepository(t, "http://localhost")
	assert.Equal(t, "openweathermap", repo.Name())
}

func TestOpenWeatherMapRepository_FetchCurrent_ByCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "London", q.Get("q"))
		assert.Equal(t, testAPIKey, q.Get("appid"))
		assert.Empty(t, q.Get("units"), "standard units are expected")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentJSON))
	}))
	defer srv.Close()

	current, err := newTestRepository(t, srv.URL).FetchCurrent(context.Background(), models.CityLocation("London"))
	require.NoError(t, err)

	assert.Equal(t, models.CurrentConditions{
		Name:       "London",
		Country:    "GB",
		Temp:       289.15,
		FeelsLike:  288.4,
		Humidity:   72,
		WindSpeed:  4.1,
		Pressure:   1012,
		Visibility: 10000,
		Condition:  "Clouds",
		Icon:       "04d",
		ObservedAt: time.Unix(1717502400, 0).UTC(),
	}, current)
}

func TestOpenWeatherMapRepository_FetchCurrent_ByCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "51.5072", q.Get("lat"))
		assert.Equal(t, "-0.1276", q.Get("lon"))
		assert.Empty(t, q.Get("q"))

		_, _ = w.Write([]byte(currentJSON))
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).FetchCurrent(context.Background(), models.CoordinatesLocation(51.5072, -0.1276))
	assert.NoError(t, err)
}

func TestOpenWeatherMapRepository_FetchForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		_, _ = w.Write([]byte(forecastJSON))
	}))
	defer srv.Close()

	samples, err := newTestRepository(t, srv.URL).FetchForecast(context.Background(), models.CityLocation("London"))
	require.NoError(t, err)

	require.Len(t, samples, 2)
	assert.Equal(t, models.ForecastSample{
		Timestamp: time.Unix(1717491600, 0).UTC(),
		TempMin:   285.2,
		TempMax:   287.9,
		Humidity:  64,
	}, samples[0])
	assert.Equal(t, 58, samples[1].Humidity)
}

func TestOpenWeatherMapRepository_APIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).FetchCurrent(context.Background(), models.CityLocation("Atlantis"))
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, "API error (status 404): city not found", err.Error())
}

func TestOpenWeatherMapRepository_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("invalid json"))
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).FetchForecast(context.Background(), models.CityLocation("London"))
	assert.Error(t, err)
}

func TestOpenWeatherMapRepository_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(forecastJSON))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRepository(t, srv.URL).FetchForecast(ctx, models.CityLocation("London"))
	assert.Error(t, err)
}

func TestOpenWeatherMapRepository_EmptyLocation(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).FetchCurrent(context.Background(), models.Location{})
	assert.Error(t, err)
	assert.Zero(t, calls.Load())
}

func TestOpenWeatherMapRepository_BreakerOpensOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL, WithBreaker(2, time.Minute))
	loc := models.CityLocation("London")

	for i := 0; i < 2; i++ {
		_, err := repo.FetchCurrent(context.Background(), loc)
		assert.Error(t, err)
	}

	_, err := repo.FetchCurrent(context.Background(), loc)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load(), "an open breaker must not reach the server")
}

func TestOpenWeatherMapRepository_ClientErrorsKeepBreakerClosed(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL, WithBreaker(2, time.Minute))

	for i := 0; i < 4; i++ {
		_, err := repo.FetchCurrent(context.Background(), models.CityLocation("Atlantis"))
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}
	assert.Equal(t, int32(4), calls.Load())
}

type canceledClient struct {
	calls atomic.Int32
}

func (c *canceledClient) Do(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return nil, fmt.Errorf("Get %q: %w", req.URL.Redacted(), context.Canceled)
}

func TestOpenWeatherMapRepository_CanceledCallsKeepBreakerClosed(t *testing.T) {
	client := &canceledClient{}
	repo, err := NewOpenWeatherMapRepository("test-key", logger.NewZapLogger("test-app", io.Discard), client,
		WithRateLimit(1000, 10),
		WithBreaker(2, time.Minute),
	)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := repo.FetchForecast(context.Background(), models.CityLocation("London"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}
	assert.Equal(t, int32(5), client.calls.Load())
}

func TestUpstreamFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "not found", err: &StatusError{Code: http.StatusNotFound}, want: false},
		{name: "unauthorized", err: &StatusError{Code: http.StatusUnauthorized}, want: false},
		{name: "too many requests", err: &StatusError{Code: http.StatusTooManyRequests}, want: true},
		{name: "bad gateway", err: &StatusError{Code: http.StatusBadGateway}, want: true},
		{name: "transport", err: errors.New("connection refused"), want: true},
		{name: "deadline", err: fmt.Errorf("request: %w", context.DeadlineExceeded), want: true},
		{name: "canceled", err: fmt.Errorf("request: %w", context.Canceled), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upstreamFailure(tt.err))
		})
	}
}

func TestOpenWeatherMapRepository_RateLimitHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(currentJSON))
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL, WithRateLimit(0.01, 1))
	loc := models.CityLocation("London")

	_, err := repo.FetchCurrent(context.Background(), loc)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = repo.FetchCurrent(ctx, loc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait canceled")
}
