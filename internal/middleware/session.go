package middleware

import (
	"net/http"

	"attendance/console/foundation/web"
	"attendance/console/internal/session"
)

// Session attaches the browser's workspace to the request. The cookie is
// written on every request so that it expires maxAge after the last use,
// in step with the manager's idle eviction.
func Session(m *session.Manager, maxAge int, secure bool) web.Middleware {
	mw := func(handler web.Handler) web.Handler {
		h := func(c *web.Context) error {
			cookie, _ := c.Cookie(session.CookieName)

			id, ws := m.Get(c.Ctx, cookie)
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, id, maxAge, "/", "", secure, true)

			c.Ctx = session.WithCurrent(c.Ctx, session.Current{ID: id, Workspace: ws})
			return handler(c)
		}
		return h
	}
	return mw
}
