package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/aiservice/core/handler"
)

var supportedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodConnect: true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// mux implements Router on top of a chi routing tree. Groups share their
// parent's tree; sub-routers get their own, mounted into the parent's.
// Middleware is collected from the parent chain when a request is served.
type mux[C handler.Context] struct {
	chi          chi.Router
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	parent       *mux[C]
	stripSlashes bool
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		chi:          chi.NewRouter(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	if m.stripSlashes {
		m.chi.Use(chimw.StripSlashes)
	}
	m.chi.NotFound(m.serve(failWith[C](ErrNotFound)))
	m.chi.MethodNotAllowed(m.serve(failWith[C](ErrMethodNotAllowed)))

	return m
}

func failWith[C handler.Context](err error) handler.HandlerFunc[C] {
	return func(C) handler.Response {
		return func(http.ResponseWriter, *http.Request) error {
			return err
		}
	}
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.chi.ServeHTTP(w, r)
}

// serve adapts a typed handler to net/http: it builds the context, applies
// the middleware stack, renders the response and recovers panics.
func (m *mux[C]) serve(h handler.HandlerFunc[C]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.newContext(ww, r, urlParams(r))

		defer func() {
			if p := recover(); p != nil {
				perr := &panicError{value: p, stack: debug.Stack()}
				if ww.Written() {
					m.logger.Error("panic after response written",
						"value", perr.value,
						"stack", string(perr.stack),
						"path", r.URL.Path,
						"method", r.Method,
						"status", ww.Status(),
					)
					return
				}
				m.errorHandler(ctx, perr)
			}
		}()

		resp := handler.Chain(h, m.stack()...)(ctx)
		if resp == nil {
			m.errorHandler(ctx, ErrNilResponse)
			return
		}

		// Middleware may have replaced the request through SetValue.
		if err := resp(ww, ctx.Request()); err != nil {
			m.errorHandler(ctx, err)
		}
	}
}

// stack returns the middleware of every ancestor followed by this router's own.
func (m *mux[C]) stack() []handler.Middleware[C] {
	var levels [][]handler.Middleware[C]
	for cur := m; cur != nil; cur = cur.parent {
		if len(cur.middlewares) > 0 {
			levels = append(levels, cur.middlewares)
		}
	}
	if len(levels) == 0 {
		return nil
	}

	var out []handler.Middleware[C]
	for i := len(levels) - 1; i >= 0; i-- {
		out = append(out, levels[i]...)
	}
	return out
}

func urlParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || len(rctx.URLParams.Keys) == 0 {
		return nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i < len(rctx.URLParams.Values) {
			params[key] = rctx.URLParams.Values[i]
		}
	}
	return params
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

// Handle registers h for all HTTP methods.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	checkPattern(pattern)
	m.chi.HandleFunc(pattern, m.serve(h))
}

// Method registers h for one or more HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}
	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

func (m *mux[C]) handle(method, pattern string, h handler.HandlerFunc[C]) {
	if !supportedMethods[method] {
		panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
	}
	checkPattern(pattern)
	m.chi.MethodFunc(method, pattern, m.serve(h))
}

func checkPattern(pattern string) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
}

// Use appends middleware to the router.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// With returns an inline router that shares routes with m.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		chi:          m.chi,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
		parent:       m,
	}
}

// Group creates an inline router and passes it to fn.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Route creates a sub-router, configures it with fn and mounts it at pattern.
func (m *mux[C]) Route(pattern string, fn func(r Router[C])) Router[C] {
	if fn == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilSubrouter, pattern))
	}
	sub := &mux[C]{chi: chi.NewRouter()}
	m.adopt(sub)
	fn(sub)
	m.chi.Mount(pattern, sub.chi)
	return sub
}

// Mount attaches a router created with New at pattern. The sub-router
// inherits m's error handler, context factory, logger and middleware.
func (m *mux[C]) Mount(pattern string, sub Router[C]) {
	if sub == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilRouter, pattern))
	}
	sm, ok := sub.(*mux[C])
	if !ok {
		panic(fmt.Errorf("%w: can only mount routers created by New", ErrNilRouter))
	}
	m.adopt(sm)
	m.chi.Mount(pattern, sm.chi)
}

func (m *mux[C]) adopt(sub *mux[C]) {
	sub.parent = m
	sub.errorHandler = m.errorHandler
	sub.newContext = m.newContext
	sub.logger = m.logger
}

// Routes returns all registered routes.
func (m *mux[C]) Routes() []Route {
	var routes []Route
	_ = chi.Walk(m.chi, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, Route{Method: method, Pattern: route})
		return nil
	})
	return routes
}
