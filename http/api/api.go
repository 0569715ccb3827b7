package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/http/middleware"
	"github.com/xy-planning-network/display/http/resp"
	"github.com/xy-planning-network/display/http/router"
)

// A Handler serves a display.Catalog.
type Handler struct {
	catalog     display.Catalog
	doer        *resp.Responder
	logger      *slog.Logger
	middlewares []middleware.Adapter
	router      *router.Router
}

// An Option configures a *Handler.
type Option func(*Handler)

// WithLogger sets the *slog.Logger the *Handler logs through.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithMiddlewares applies middlewares to every request the *Handler serves.
func WithMiddlewares(middlewares ...middleware.Adapter) Option {
	return func(h *Handler) {
		h.middlewares = append(h.middlewares, middlewares...)
	}
}

// New constructs a *Handler serving c.
func New(c display.Catalog, opts ...Option) *Handler {
	h := &Handler{catalog: c}
	for _, opt := range opts {
		opt(h)
	}

	if h.logger == nil {
		h.logger = slog.Default()
	}

	h.doer = resp.NewResponder(resp.WithLogger(h.logger))
	h.router = router.New(h.middlewares...)
	h.router.HandleRoutes(h.Routes())
	h.router.HandleNotFound(h.notFound)

	return h
}

// Routes lists the Routes the *Handler serves.
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{Path: "/enums", Method: http.MethodGet, Handler: h.listEnums},
		{Path: "/enums/{name}", Method: http.MethodGet, Handler: h.getEnum},
		{Path: "/enums/{name}/{symbol}", Method: http.MethodGet, Handler: h.getValue},
	}
}

// ServeHTTP responds to an HTTP request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) listEnums(w http.ResponseWriter, r *http.Request) {
	names := h.catalog.Names()
	if names == nil {
		names = []string{}
	}

	h.respond(w, r, resp.Data(names))
}

func (h *Handler) getEnum(w http.ResponseWriter, r *http.Request) {
	e, err := h.catalog.Lookup(router.Vars(r)["name"])
	if err != nil {
		h.respond(w, r, resp.Err(err))
		return
	}

	ds := e.Descriptors()
	if r.URL.Query().Has("group") {
		group := r.URL.Query().Get("group")
		filtered := make([]display.Descriptor, 0, len(ds))
		for _, d := range ds {
			if d.GroupName() == group {
				filtered = append(filtered, d)
			}
		}
		ds = filtered
	}

	if ds == nil {
		ds = []display.Descriptor{}
	}

	h.respond(w, r, resp.Data(ds))
}

func (h *Handler) getValue(w http.ResponseWriter, r *http.Request) {
	vars := router.Vars(r)
	e, err := h.catalog.Lookup(vars["name"])
	if err != nil {
		h.respond(w, r, resp.Err(err))
		return
	}

	d, err := e.DescribeSymbol(vars["symbol"])
	if err != nil {
		h.respond(w, r, resp.Err(err))
		return
	}

	h.respond(w, r, resp.Data(d))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, resp.Err(fmt.Errorf("%w: no route for %s", display.ErrNotExist, r.URL.Path)))
}

// respond renders fns as JSON.
// When nothing could be rendered, the failure is logged and,
// unless the request is already done, a bare 500 is written.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, fns ...resp.Fn) {
	err := h.doer.Json(w, r, fns...)
	if err == nil {
		return
	}

	h.logger.ErrorContext(
		r.Context(),
		"unable to respond",
		slog.Attr{Key: display.LogKindKey, Value: display.HTTPLogKind},
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)

	if errors.Is(err, resp.ErrMissingData) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
