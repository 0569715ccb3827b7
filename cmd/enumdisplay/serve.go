package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/http/api"
	"github.com/xy-planning-network/display/http/middleware"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve enumerations as JSON over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
}

// handler builds the http.Handler serving c, wrapped in every middleware the server applies.
func (a *app) handler(c display.Catalog) http.Handler {
	h := api.New(
		c,
		api.WithLogger(a.logger),
		api.WithMiddlewares(
			middleware.RequestID(),
			middleware.LogRequest(a.logger),
			middleware.RateLimit(middleware.NewVisitors(a.cfg.RateLimit, a.cfg.RateBurst)),
		),
	)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{a}),
	)(handlers.CORS(
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(h))
}

func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      a.handler(a.source()),
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		a.logger.Info("serving enumerations", "addr", srv.Addr, "env", a.cfg.Env.String())
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// recoveryLogger reports panics recovered by handlers.RecoveryHandler.
type recoveryLogger struct{ a *app }

func (l recoveryLogger) Println(v ...any) {
	l.a.logger.Error("recovered from panic", "panic", v)
}
