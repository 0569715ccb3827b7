package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/display/logger"
)

const testDSN = "https://public@sentry.example.com/1"

type transport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (t *transport) Configure(sentry.ClientOptions) {}

func (t *transport) Flush(time.Duration) bool { return true }

func (t *transport) SendEvent(e *sentry.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

func TestNewJSON(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)
	l := logger.New(logger.WithWriter(buf))

	// Act
	l.Debug("hidden")
	l.Info("shown", "enum", "Status")

	// Assert
	var actual map[string]any
	require.Nil(t, json.Unmarshal(buf.Bytes(), &actual))
	require.Equal(t, "shown", actual["msg"])
	require.Equal(t, "INFO", actual["level"])
	require.Equal(t, "Status", actual["enum"])
}

func TestNewColor(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)
	l := logger.New(logger.WithWriter(buf), logger.WithColor(true), logger.WithLevel(slog.LevelDebug))

	// Act
	l.With("kind", "registry").WithGroup("table").Debug("registered enumeration", "enum", "Some Status", "members", 3)

	// Assert
	logged := buf.String()
	require.Contains(t, logged, "[DEBUG]")
	require.Contains(t, logged, "registered enumeration kind=registry")
	require.Contains(t, logged, `table.enum="Some Status" table.members=3`)
	require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNewColorLevel(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)
	l := logger.New(logger.WithWriter(buf), logger.WithColor(true), logger.WithLevel(slog.LevelWarn))

	// Act
	l.Info("hidden")
	l.Warn("shown")

	// Assert
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN]")
}

func TestNewSentry(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)
	tr := new(transport)
	l := logger.New(
		logger.WithWriter(buf),
		logger.WithEnv("TESTING"),
		logger.WithLevel(slog.LevelError+4),
		logger.WithSentryDSN(testDSN),
		logger.WithSentryTransport(tr),
	)

	// Act
	l.Warn("not sent")
	l.Error("sync failed", "error", errors.New("connection reset"), "enum", "Status")
	l.Error("no error attached")

	// Assert
	require.Empty(t, buf.String())
	require.Len(t, tr.events, 2)

	require.Equal(t, sentry.LevelError, tr.events[0].Level)
	require.Equal(t, "TESTING", tr.events[0].Environment)
	require.Len(t, tr.events[0].Exception, 1)
	require.Equal(t, "connection reset", tr.events[0].Exception[0].Value)
	require.Equal(t, "Status", tr.events[0].Extra["enum"])
	require.Equal(t, "sync failed", tr.events[0].Extra["message"])

	require.Equal(t, "no error attached", tr.events[1].Message)
}

func TestNewSentryConcurrent(t *testing.T) {
	// Arrange
	tr := new(transport)
	l := logger.New(
		logger.WithWriter(new(bytes.Buffer)),
		logger.WithSentryDSN(testDSN),
		logger.WithSentryTransport(tr),
	)

	// Act
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Error(fmt.Sprintf("failure %d", i), "n", i)
		}(i)
	}
	wg.Wait()

	// Assert
	require.Len(t, tr.events, 50)
	for _, e := range tr.events {
		require.Equal(t, fmt.Sprintf("failure %s", e.Extra["n"]), e.Message)
		require.Len(t, e.Extra, 1)
	}
}

func TestNewSentryBadDSN(t *testing.T) {
	// Arrange
	buf := new(bytes.Buffer)

	// Act
	l := logger.New(logger.WithWriter(buf), logger.WithSentryDSN("not a dsn"))

	// Assert
	require.NotNil(t, l)
	require.Contains(t, buf.String(), "unable to init Sentry")
}

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		val      string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"FATAL", slog.LevelInfo},
	} {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.ParseLevel(tc.val, slog.LevelInfo))
		})
	}
}
