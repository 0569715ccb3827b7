package resp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/http/middleware"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder builds while applying all functional options.
type Response struct {
	w    http.ResponseWriter
	r    *http.Request
	code int
	data any
	err  error
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores d for writing to the client.
//
// If d is nil, Data returns ErrMissingData.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		if d == nil {
			return fmt.Errorf("%w: Data called with nil", ErrMissingData)
		}

		r.data = d
		return nil
	}
}

// Err sets e as the error of the response and logs it.
//
// Unless Code already set one, the status code follows from e:
//   - display.ErrNotExist and display.ErrUnsupportedType are 404
//   - display.ErrNotValid is 400
//   - anything else is 500
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e == nil {
			return nil
		}

		r.err = e
		if r.code == 0 {
			r.code = StatusOf(e)
		}

		level := slog.LevelWarn
		if r.code >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		d.logger.LogAttrs(
			r.r.Context(),
			level,
			e.Error(),
			slog.Attr{Key: display.LogKindKey, Value: display.HTTPLogKind},
			slog.String("method", r.r.Method),
			slog.String("path", r.r.URL.Path),
			slog.String("requestID", middleware.RequestIDFromContext(r.r.Context())),
			slog.Int("status", r.code),
		)

		return nil
	}
}

// StatusOf maps err to the HTTP status code a response reporting it uses.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, display.ErrNotExist), errors.Is(err, display.ErrUnsupportedType):
		return http.StatusNotFound
	case errors.Is(err, display.ErrNotValid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
