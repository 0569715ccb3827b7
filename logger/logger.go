package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const timeFormat = "2006/01/02 15:04:05"

// New constructs a *slog.Logger.
//
// Records are printed to os.Stdout by default.
// The default level is INFO.
//
// If Sentry cannot be set up with the DSN provided through WithSentryDSN,
// New logs the failure and returns a *slog.Logger that does not send to Sentry.
func New(opts ...OptFn) *slog.Logger {
	c := &config{env: "DEVELOPMENT", level: slog.LevelInfo, w: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}

	var h slog.Handler
	if c.color {
		h = newColorHandler(c.w, c.level)
	} else {
		h = slog.NewJSONHandler(c.w, &slog.HandlerOptions{Level: c.level})
	}

	if c.sentryDSN == "" {
		return slog.New(h)
	}

	sh, err := newSentryHandler(h, c)
	if err != nil {
		l := slog.New(h)
		l.Error("unable to init Sentry", "error", err)
		return l
	}

	return slog.New(sh)
}

// ParseLevel creates a slog.Level from val, case-insensitively.
// If val names no level, ParseLevel returns def.
func ParseLevel(val string, def slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(val)); err != nil {
		return def
	}

	return level
}

var levelColors = map[slog.Level]func(string, ...any) string{
	slog.LevelDebug: color.WhiteString,
	slog.LevelInfo:  color.BlueString,
	slog.LevelWarn:  color.YellowString,
	slog.LevelError: color.RedString,
}

// colorHandler prints records as a single line of text,
// the level colorized:
//
//	2024/04/28 15:55:21 [WARN] msg key=value
type colorHandler struct {
	attrs  string
	groups []string
	level  slog.Leveler
	mu     *sync.Mutex
	w      io.Writer
}

func newColorHandler(w io.Writer, level slog.Leveler) *colorHandler {
	return &colorHandler{level: level, mu: new(sync.Mutex), w: w}
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	colorize, ok := levelColors[r.Level]
	if !ok {
		colorize = color.MagentaString
	}

	b := new(strings.Builder)
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(timeFormat))
		b.WriteByte(' ')
	}

	b.WriteString(colorize("[%s]", r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, h.groups, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	b := new(strings.Builder)
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(b, h.groups, a)
	}

	nh := *h
	nh.attrs = b.String()
	return &nh
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func writeAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			groups = append(append([]string{}, groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, groups, ga)
		}
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	val := a.Value.String()
	if a.Value.Kind() == slog.KindTime {
		val = a.Value.Time().Format(time.RFC3339)
	}

	if strings.ContainsAny(val, " =\"") {
		val = fmt.Sprintf("%q", val)
	}

	fmt.Fprintf(b, " %s=%s", key, val)
}
