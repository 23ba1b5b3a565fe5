package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopfront/internal/errors"
	"shopfront/internal/service"
)

// OrderHandler handles checkout and the order confirmation page.
type OrderHandler struct {
	checkoutService service.CheckoutService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(checkoutService service.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// CreateOrder godoc
// @Summary Convert the user's cart into an order
// @Tags orders
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/createOrder [get]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	// the checkout procedure owns atomicity end to end; on failure the
	// caller must assume nothing happened
	if err := h.checkoutService.Checkout(c.Request().Context(), c.QueryParam("username")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order created"})
}

// OrderedPage godoc
// @Summary Order confirmation page
// @Tags orders
// @Produce html
// @Success 200 {string} string
// @Router /ordered [get]
func (h *OrderHandler) OrderedPage(c echo.Context) error {
	return c.Render(http.StatusOK, "ordered.html", echo.Map{
		"Confirmation": uuid.New().String(),
	})
}
