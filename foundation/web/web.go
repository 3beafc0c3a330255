// Package web is a thin layer over gin that lets handlers return errors
// and lets middleware wrap handlers per route.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles one request. A returned error has already been responded
// to when it came from Respond or RespondError; otherwise App writes it.
type Handler func(c *Context) error

// Middleware wraps a Handler.
type Middleware func(Handler) Handler

// App is the entrypoint into the console. It embeds gin so the router can
// still reach the engine for static files, templates and groups.
type App struct {
	*gin.Engine
	mw []Middleware
}

// NewApp creates an App with the given middleware applied to every route.
func NewApp(engine *gin.Engine, mw ...Middleware) *App {
	return &App{Engine: engine, mw: mw}
}

// Handle registers h for method and path with the app-wide middleware
// wrapped around the route-specific middleware.
func (a *App) Handle(method, path string, h Handler, mw ...Middleware) {
	h = wrapMiddleware(mw, h)
	h = wrapMiddleware(a.mw, h)

	a.Engine.Handle(method, path, func(gc *gin.Context) {
		c := &Context{Context: gc, Ctx: gc.Request.Context()}
		if err := h(c); err != nil && !gc.Writer.Written() {
			_ = c.RespondError(err)
		}
	})
}

func (a *App) Get(path string, h Handler, mw ...Middleware) {
	a.Handle(http.MethodGet, path, h, mw...)
}

func (a *App) Post(path string, h Handler, mw ...Middleware) {
	a.Handle(http.MethodPost, path, h, mw...)
}

func (a *App) Delete(path string, h Handler, mw ...Middleware) {
	a.Handle(http.MethodDelete, path, h, mw...)
}

// wrapMiddleware applies mw so that the first element runs first.
func wrapMiddleware(mw []Middleware, h Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		if mw[i] != nil {
			h = mw[i](h)
		}
	}
	return h
}

// Context carries the gin context plus a request-scoped context.Context
// that middleware may enrich.
type Context struct {
	*gin.Context
	Ctx context.Context

	queryErrs []string
}
