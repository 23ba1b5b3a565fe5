package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopfront/internal/errors"
	"shopfront/internal/service"
)

// demoCartUser is the username the legacy cart page renders when no session
// is involved, kept for front-end compatibility.
const demoCartUser = "generic"

// PageHandler renders the static-ish storefront pages.
type PageHandler struct {
	cartService service.CartService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cartService service.CartService) *PageHandler {
	return &PageHandler{cartService: cartService}
}

// Index renders the storefront landing page.
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// Valuations renders the valuations page shell.
func (h *PageHandler) Valuations(c echo.Context) error {
	return c.Render(http.StatusOK, "valuations.html", nil)
}

// SignedUp renders the post-registration page shell.
func (h *PageHandler) SignedUp(c echo.Context) error {
	return c.Render(http.StatusOK, "signed_up.html", nil)
}

// Reports renders the reports page shell.
func (h *PageHandler) Reports(c echo.Context) error {
	return c.Render(http.StatusOK, "reports.html", nil)
}

// CartPage renders the cart page with its joined inventory rows.
func (h *PageHandler) CartPage(c echo.Context) error {
	lines, err := h.cartService.List(c.Request().Context(), demoCartUser)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.Render(http.StatusOK, "cart.html", echo.Map{"ItemsInCart": lines})
}
