package display

import (
	"log/slog"
	"sync/atomic"
)

const LogKindKey = "kind"

var (
	HTTPLogKind     = slog.StringValue("http")
	RegistryLogKind = slog.StringValue("registry")
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger package display reports registrations to.
// Passing nil reverts to [log/slog.Default].
func SetLogger(l *slog.Logger) { pkgLogger.Store(l) }

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}

	return slog.Default()
}
