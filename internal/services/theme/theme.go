package theme

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"weather-card/internal/clock"
	"weather-card/pkg/logger"
)

// Theme is the time-of-day display mode.
type Theme string

const (
	Morning    Theme = "morning"
	Noon       Theme = "noon"
	LightNight Theme = "light-night"
	DarkNight  Theme = "dark-night"
)

const defaultInterval = time.Minute

// ForHour maps a local hour (0-23) to its theme.
func ForHour(hour int) Theme {
	switch {
	case hour >= 7 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Noon
	case hour >= 18:
		return LightNight
	default:
		return DarkNight
	}
}

// Refresher re-derives the theme from its clock on a fixed interval.
type Refresher struct {
	clock     clock.Clock
	loc       *time.Location
	interval  time.Duration
	scheduler *gocron.Scheduler
	l         *logger.Logger

	mu      sync.RWMutex
	current Theme
}

func NewRefresher(c clock.Clock, loc *time.Location, interval time.Duration, l *logger.Logger) *Refresher {
	if loc == nil {
		loc = time.Local
	}
	if interval <= 0 {
		interval = defaultInterval
	}

	r := &Refresher{
		clock:     c,
		loc:       loc,
		interval:  interval,
		scheduler: gocron.NewScheduler(loc),
		l:         l,
	}
	r.refresh()

	return r
}

// Start schedules the refresh job. The first tick runs immediately.
func (r *Refresher) Start() error {
	if _, err := r.scheduler.Every(r.interval).Do(r.refresh); err != nil {
		return err
	}
	r.scheduler.StartAsync()

	r.l.Info("theme refresher started", map[string]any{
		"interval": r.interval.String(),
		"timezone": r.loc.String(),
	})

	return nil
}

func (r *Refresher) Stop() {
	r.scheduler.Stop()
}

func (r *Refresher) Current() Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Refresher) refresh() {
	now := r.clock.Now().In(r.loc)
	next := ForHour(now.Hour())

	r.mu.Lock()
	prev := r.current
	r.current = next
	r.mu.Unlock()

	if prev != next {
		r.l.Debug("display theme changed", map[string]any{
			"from": string(prev),
			"to":   string(next),
			"hour": now.Hour(),
		})
	}
}
