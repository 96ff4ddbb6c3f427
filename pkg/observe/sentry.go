package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"weather-card/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is a log writer that forwards error-level JSON records to Sentry.
type SentryHook struct {
	appEnv  string
	appName string
	enabled bool
}

func NewSentryHook(appEnv, appName, dsn string, isDebug bool) (*SentryHook, error) {
	h := &SentryHook{
		appEnv:  appEnv,
		appName: appName,
	}
	if dsn == "" {
		return h, nil
	}

	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appEnv,
			MaxErrorDepth:    _sentryMaxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {
		return nil, errors.Wrap(err, "sentry init")
	}

	h.enabled = true
	return h, nil
}

func (h *SentryHook) Enabled() bool {
	return h.enabled
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {

	switch zl {

	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal

	}

	return sentry.LevelDebug
}

type logRecord struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	AppEnv     string `json:"app_env"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

// event builds the Sentry event for a record, or nil when the record is below error level.
func (h *SentryHook) event(p []byte) (*sentry.Event, error) {
	var t logRecord
	if err := json.Unmarshal(p, &t); err != nil {
		return nil, errors.Wrap(err, "[SentryHook] json.Unmarshal data")
	}

	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		return nil, errors.Wrap(err, "[SentryHook] parse zap level")
	}
	if len(t.Message) == 0 || level < zapcore.ErrorLevel {
		return nil, nil
	}

	timestamp, _ := time.ParseInLocation(logger.TimestampLayout, t.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appEnv
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = t.Message
	event.Extra["Error"] = t.Error
	event.Extra["CallerFile"] = t.CallerFile
	event.Extra["CallerLine"] = t.CallerLine
	event.Extra["CallerFunc"] = t.CallerFunc
	event.Extra["Stack"] = t.Stack
	event.Extra["TimeStamp"] = t.Timestamp
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       t.Message,
		Value:      t.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event, nil
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if !h.enabled {
		return len(p), nil
	}

	event, err := h.event(p)
	if err != nil {
		// the hook is one of the logger's writers, so report on stderr
		log.Println(err.Error())
		return len(p), nil
	}
	if event != nil {
		sentry.CaptureEvent(event)
	}

	return len(p), nil
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	if !h.enabled {
		return true
	}
	return sentry.Flush(_sentryFlushTimeout)
}
