package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopfront/internal/errors"
	"shopfront/internal/service"
	"shopfront/internal/session"
)

// AuthHandler handles login, logout and the protected admin page.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login form. The fields deliberately carry no
// required validation: empty credentials follow the same uniform failure path
// as wrong ones.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Remember bool   `form:"remember"`
}

// LoginPage godoc
// @Summary Render the login form
// @Tags auth
// @Produce html
// @Success 200 {string} string
// @Router /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{"LoginError": false})
}

// Login godoc
// @Summary Authenticate and open a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string false "Username"
// @Param password formData string false "Password"
// @Success 200 {string} string
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess, rememberToken, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, req.Remember)
	if err != nil {
		if err == errors.ErrInvalidCredentials {
			// normal outcome, never logged as an error
			return c.Render(http.StatusOK, "login.html", echo.Map{"LoginError": true})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	session.SetCookie(c, sess)
	if rememberToken != "" {
		session.SetRememberCookie(c, rememberToken)
	}
	return c.Render(http.StatusOK, "admin.html", echo.Map{"Username": sess.Username})
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Success 303 {string} string
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := ""
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		sessionID = cookie.Value
	}

	// destroying an absent or already-destroyed session is a no-op
	if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	session.ClearCookie(c)
	session.ClearRememberCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// AdminPage godoc
// @Summary Protected admin page
// @Tags auth
// @Produce html
// @Success 200 {string} string
// @Router /admin [get]
func (h *AuthHandler) AdminPage(c echo.Context) error {
	data := echo.Map{}
	if sess := session.FromContext(c); sess != nil {
		data["Username"] = sess.Username
	}
	return c.Render(http.StatusOK, "admin.html", data)
}
