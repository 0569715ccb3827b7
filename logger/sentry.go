package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

var sentryLevels = map[slog.Level]sentry.Level{
	slog.LevelDebug: sentry.LevelDebug,
	slog.LevelInfo:  sentry.LevelInfo,
	slog.LevelWarn:  sentry.LevelWarning,
	slog.LevelError: sentry.LevelError,
}

// A sentryHandler passes every record on to the next slog.Handler
// and also sends those at slog.LevelError or above to Sentry.
type sentryHandler struct {
	attrs []slog.Attr
	hub   *sentry.Hub
	next  slog.Handler
}

func newSentryHandler(next slog.Handler, c *config) (*sentryHandler, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:          c.sentryDSN,
		Environment:  c.env,
		IgnoreErrors: []string{"write: broken pipe"},
		Transport:    c.transport,
	})
	if err != nil {
		return nil, err
	}

	return &sentryHandler{hub: sentry.NewHub(client, sentry.NewScope()), next: next}, nil
}

func (h *sentryHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelError || h.next.Enabled(ctx, level)
}

func (h *sentryHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if h.next.Enabled(ctx, r.Level) {
		err = h.next.Handle(ctx, r)
	}

	if r.Level >= slog.LevelError {
		h.send(r)
	}

	return err
}

func (h *sentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sentryHandler{
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
		hub:   h.hub,
		next:  h.next.WithAttrs(attrs),
	}
}

func (h *sentryHandler) WithGroup(name string) slog.Handler {
	return &sentryHandler{attrs: h.attrs, hub: h.hub, next: h.next.WithGroup(name)}
}

// send ships the record to Sentry, including its attributes as extra data.
func (h *sentryHandler) send(r slog.Record) {
	var captured error
	extra := make(map[string]any)
	collect := func(a slog.Attr) bool {
		if e, ok := a.Value.Any().(error); ok && a.Key == "error" {
			captured = e
			return true
		}

		extra[a.Key] = a.Value.String()
		return true
	}

	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	level, ok := sentryLevels[r.Level]
	if !ok {
		level = sentry.LevelFatal
	}

	hub := h.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		scope.SetExtras(extra)
		if captured == nil {
			hub.CaptureMessage(r.Message)
			return
		}

		scope.SetExtra("message", r.Message)
		hub.CaptureException(captured)
	})
}
