package observe

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentryHook_DisabledWithoutDSN(t *testing.T) {
	h, err := NewSentryHook("test", "test-app", "", false)
	require.NoError(t, err)

	assert.False(t, h.Enabled())

	p := []byte(`{"level":"error","msg":"boom"}`)
	n, err := h.Write(p)
	assert.NoError(t, err)
	assert.Equal(t, len(p), n)
	assert.True(t, h.Flush())
}

func TestSentryHook_EventForErrorRecord(t *testing.T) {
	h := &SentryHook{appEnv: "prod", appName: "weather-card"}

	event, err := h.event([]byte(`{"level":"error","msg":"data unavailable","error":"HTTP error (status 500)","caller_line":42,"timestamp":"2024-06-04T12-00-00.000"}`))
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "prod", event.Environment)
	assert.Equal(t, "data unavailable", event.Message)
	assert.Equal(t, "HTTP error (status 500)", event.Extra["Error"])
	assert.Equal(t, 42, event.Extra["CallerLine"])
	assert.Equal(t, 2024, event.Timestamp.Year())
}

func TestSentryHook_IgnoresLowerLevels(t *testing.T) {
	h := &SentryHook{appEnv: "prod", appName: "weather-card"}

	event, err := h.event([]byte(`{"level":"info","msg":"fetched"}`))
	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestSentryHook_MalformedRecord(t *testing.T) {
	h := &SentryHook{}

	_, err := h.event([]byte(`not json`))
	assert.Error(t, err)

	_, err = h.event([]byte(`{"level":"loud","msg":"x"}`))
	assert.Error(t, err)
}
