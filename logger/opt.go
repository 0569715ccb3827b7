package logger

import (
	"io"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// An OptFn is a functional option configuring the *slog.Logger New constructs.
type OptFn func(*config)

type config struct {
	color     bool
	env       string
	level     slog.Level
	sentryDSN string
	transport sentry.Transport
	w         io.Writer
}

// WithColor prints records as colorized text instead of JSON.
func WithColor(color bool) OptFn {
	return func(c *config) {
		c.color = color
	}
}

// WithEnv sets the environment reported to Sentry.
func WithEnv(env string) OptFn {
	return func(c *config) {
		c.env = env
	}
}

// WithLevel sets the minimum level of records printed.
func WithLevel(level slog.Level) OptFn {
	return func(c *config) {
		c.level = level
	}
}

// WithSentryDSN sends error records to the Sentry project identified by dsn.
// An empty dsn disables Sentry.
func WithSentryDSN(dsn string) OptFn {
	return func(c *config) {
		c.sentryDSN = dsn
	}
}

// WithSentryTransport sets the sentry.Transport events are shipped through.
func WithSentryTransport(t sentry.Transport) OptFn {
	return func(c *config) {
		c.transport = t
	}
}

// WithWriter sets the io.Writer records are printed to.
func WithWriter(w io.Writer) OptFn {
	return func(c *config) {
		c.w = w
	}
}
