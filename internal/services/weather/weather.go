package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-card/internal/clock"
	"weather-card/internal/forecast"
	"weather-card/internal/models"
	"weather-card/internal/repositories"
	"weather-card/internal/services/theme"
	"weather-card/internal/timefmt"
	"weather-card/internal/units"
	"weather-card/pkg/logger"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s.png"

var (
	// ErrNoLocation means neither a city nor coordinates were given. Nothing is fetched.
	ErrNoLocation = errors.New("no location supplied")
	// ErrDataUnavailable is the only failure surfaced for a fetch; the cause is logged.
	ErrDataUnavailable = errors.New("weather data unavailable")
)

type ThemeSource interface {
	Current() theme.Theme
}

// Display holds what the service needs to render times for people.
type Display struct {
	Clock    clock.Clock
	Location *time.Location
	Dates    *timefmt.Formatter
}

// WeatherService answers one weather query at a time; it keeps no state between queries.
type WeatherService struct {
	repo    repositories.WeatherRepository
	themes  ThemeSource
	display Display
	l       *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, themes ThemeSource, display Display, l *logger.Logger) *WeatherService {
	if display.Clock == nil {
		display.Clock = clock.System{}
	}
	if display.Location == nil {
		display.Location = time.Local
	}

	return &WeatherService{
		repo:    repo,
		themes:  themes,
		display: display,
		l:       l,
	}
}

// FetchReport fetches current conditions and the forecast for loc and turns them
// into a display-ready report. Either both fetches succeed or nothing is returned.
func (s *WeatherService) FetchReport(ctx context.Context, loc models.Location) (*models.Report, error) {
	if loc.IsZero() {
		return nil, ErrNoLocation
	}

	queryID := uuid.NewString()

	s.l.Info("starting weather query", map[string]any{
		"queryID":  queryID,
		"location": loc.Key(),
		"repo":     s.repo.Name(),
	})

	var (
		current models.CurrentConditions
		samples []models.ForecastSample
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.repo.FetchCurrent(gctx, loc)
		if err != nil {
			return errors.Wrap(err, "fetch current conditions")
		}
		current = c
		return nil
	})
	g.Go(func() error {
		f, err := s.repo.FetchForecast(gctx, loc)
		if err != nil {
			return errors.Wrap(err, "fetch forecast")
		}
		samples = f
		return nil
	})

	if err := g.Wait(); err != nil {
		s.l.Error(err, map[string]any{
			"queryID":  queryID,
			"location": loc.Key(),
		})
		return nil, ErrDataUnavailable
	}

	now := s.display.Clock.Now().In(s.display.Location)
	days := forecast.Aggregate(samples, s.display.Location)

	report := &models.Report{
		QueryID:     queryID,
		Location:    loc.Key(),
		Current:     s.currentView(current, now),
		Daily:       dailyViews(days),
		GeneratedAt: now,
	}
	if s.themes != nil {
		report.Theme = string(s.themes.Current())
	}

	s.l.Info("completed weather query", map[string]any{
		"queryID": queryID,
		"samples": len(samples),
		"days":    len(days),
	})

	return report, nil
}

func (s *WeatherService) currentView(c models.CurrentConditions, now time.Time) models.CurrentView {
	view := models.CurrentView{
		Name:         c.Name,
		Country:      c.Country,
		TemperatureC: units.ToCelsius(c.Temp),
		FeelsLikeC:   units.ToCelsius(c.FeelsLike),
		Humidity:     c.Humidity,
		WindMPH:      units.ToMilesPerHour(c.WindSpeed),
		PressureMB:   c.Pressure,
		VisibilityKM: units.MetersToKilometers(c.Visibility),
		Condition:    c.Condition,
		Weekday:      timefmt.AbbreviatedWeekday(now),
		Clock:        timefmt.FormatClock12h(now),
	}
	if c.Icon != "" {
		view.IconURL = fmt.Sprintf(iconURLFormat, c.Icon)
	}
	if s.display.Dates != nil {
		view.Date = s.display.Dates.FormatLongDate(now)
	}
	return view
}

func dailyViews(days []models.DailyForecast) []models.DailyView {
	views := make([]models.DailyView, 0, len(days))
	for _, d := range days {
		views = append(views, models.DailyView{
			Date:     d.Date.Format(time.DateOnly),
			Weekday:  timefmt.AbbreviatedWeekday(d.Date),
			TempMinC: units.ToCelsius(d.TempMin),
			TempMaxC: units.ToCelsius(d.TempMax),
			Humidity: d.Humidity,
		})
	}
	return views
}
