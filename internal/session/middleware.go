package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shopfront/internal/auth"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "shopfront_session"
	// RememberCookieName is the long-lived signed token cookie.
	RememberCookieName = "shopfront_remember"

	contextKey = "session"
)

// Middleware restores session state from cookies and gates protected routes.
type Middleware struct {
	store    Store
	remember *auth.RememberToken
}

// NewMiddleware creates session middleware over the given store. remember may
// be nil to disable remember-me restoration.
func NewMiddleware(store Store, remember *auth.RememberToken) *Middleware {
	return &Middleware{store: store, remember: remember}
}

// Load resolves the current session, if any, and stashes it in the request
// context. A valid remember token with no live session opens a fresh one.
// Store transport failures fail the request; absent state does not.
func (m *Middleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
			sess, err := m.store.Get(ctx, cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session lookup failed")
			}
			if sess != nil {
				c.Set(contextKey, sess)
				return next(c)
			}
		}

		if m.remember != nil {
			if cookie, err := c.Cookie(RememberCookieName); err == nil && cookie.Value != "" {
				if claims, err := m.remember.Validate(cookie.Value); err == nil {
					sess, err := m.store.Create(ctx, claims.Username)
					if err != nil {
						return echo.NewHTTPError(http.StatusInternalServerError, "session create failed")
					}
					SetCookie(c, sess)
					c.Set(contextKey, sess)
				}
			}
		}

		return next(c)
	}
}

// RequireAuthenticated denies requests without an authenticated session by
// redirecting to the login page, never by rendering an error.
func (m *Middleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := FromContext(c)
		if sess == nil || !sess.Authenticated {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// FromContext returns the session stashed by Load, or nil.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(contextKey).(*Session)
	return sess
}

// SetCookie attaches the session cookie for sess to the response.
func SetCookie(c echo.Context, sess *Session) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetRememberCookie attaches a remember-me token cookie to the response.
func SetRememberCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     RememberCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.RememberTokenExpiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearRememberCookie expires the remember-me cookie on the client.
func ClearRememberCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     RememberCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
