package resp

import "log/slog"

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithLogger sets the *slog.Logger errors are logged through.
//
// If no *slog.Logger is provided through this option, slog.Default is used.
func WithLogger(l *slog.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = l
	}
}
