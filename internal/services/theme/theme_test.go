package theme

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"weather-card/pkg/logger"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func hour(h int) time.Time {
	return time.Date(2024, 6, 4, h, 30, 0, 0, time.UTC)
}

func TestForHour(t *testing.T) {
	want := map[int]Theme{
		0: DarkNight, 6: DarkNight,
		7: Morning, 11: Morning,
		12: Noon, 17: Noon,
		18: LightNight, 23: LightNight,
	}

	for h, th := range want {
		assert.Equal(t, th, ForHour(h), "hour %d", h)
	}
}

func TestRefresher_DerivesFromClock(t *testing.T) {
	c := &stepClock{now: hour(8)}
	r := NewRefresher(c, time.UTC, time.Minute, logger.NewZapLogger("test-app", io.Discard))

	assert.Equal(t, Morning, r.Current())

	c.set(hour(19))
	assert.Equal(t, Morning, r.Current(), "theme only changes on a tick")

	r.refresh()
	assert.Equal(t, LightNight, r.Current())
}

func TestRefresher_UsesDisplayTimezone(t *testing.T) {
	c := &stepClock{now: hour(10)}
	r := NewRefresher(c, time.FixedZone("UTC+9", 9*3600), time.Minute, logger.NewZapLogger("test-app", io.Discard))

	assert.Equal(t, LightNight, r.Current())
}

func TestRefresher_StartTicks(t *testing.T) {
	c := &stepClock{now: hour(3)}
	r := NewRefresher(c, time.UTC, time.Second, logger.NewZapLogger("test-app", io.Discard))
	assert.Equal(t, DarkNight, r.Current())

	c.set(hour(13))
	assert.NoError(t, r.Start())
	defer r.Stop()

	assert.Eventually(t, func() bool {
		return r.Current() == Noon
	}, 3*time.Second, 50*time.Millisecond)
}
