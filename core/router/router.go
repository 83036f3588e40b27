package router

import (
	"net/http"

	"github.com/dmitrymomot/aiservice/core/handler"
)

// Router registers typed handlers and serves them over HTTP.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])

	// Handle registers h for every method.
	Handle(pattern string, h handler.HandlerFunc[C])
	// Method registers h for the listed methods.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware. It applies to every route of this router and
	// its groups and sub-routers, including routes registered earlier.
	Use(middlewares ...handler.Middleware[C])
	// With returns a router sharing this one's routes with extra middleware.
	With(middlewares ...handler.Middleware[C]) Router[C]

	Group(fn func(r Router[C])) Router[C]
	Route(pattern string, fn func(r Router[C])) Router[C]
	Mount(pattern string, sub Router[C])
}

// Routes lists registered routes.
type Routes interface {
	Routes() []Route
}

// Route is a registered method and pattern.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router. Without WithContextFactory, C must be *Context.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
