package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopfront/internal/errors"
	"shopfront/internal/service"
)

// CartHandler handles cart mutation and listing endpoints. Query parameter
// names match the storefront's legacy front-end contract.
type CartHandler struct {
	cartService    service.CartService
	catalogService service.CatalogService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService, catalogService service.CatalogService) *CartHandler {
	return &CartHandler{cartService: cartService, catalogService: catalogService}
}

// InsertIntoCartRequest represents an add-to-cart request.
type InsertIntoCartRequest struct {
	Username  string `query:"username" validate:"required"`
	Model     string `query:"inventory_quantities_inventory_model" validate:"required"`
	Size      string `query:"inventory_quantities_size" validate:"required"`
	ColorCode string `query:"inventory_quantities_color_color_code" validate:"required"`
	Gender    string `query:"inventory_quantities_gender" validate:"required"`
	Quantity  int    `query:"quantity_in_cart" validate:"required,gt=0"`
}

// UpdateCartQuantityRequest represents a quantity update keyed by (username, sequence).
// NewQuantity is a pointer so an absent parameter is rejected instead of
// binding to zero and silently emptying the cart line; an explicit 0 is legal.
type UpdateCartQuantityRequest struct {
	NewQuantity *int   `query:"newQuantity" validate:"required,gte=0"`
	Username    string `query:"username" validate:"required"`
	Sequence    int    `query:"sequence" validate:"required,gt=0"`
}

// DeleteFromCartRequest represents a cart line delete keyed by (username, sequence).
type DeleteFromCartRequest struct {
	Username string `query:"username" validate:"required"`
	Sequence int    `query:"sequence" validate:"required,gt=0"`
}

// InsertIntoCart godoc
// @Summary Add an inventory variant to a cart
// @Tags cart
// @Produce json
// @Param username query string true "Username"
// @Param inventory_quantities_inventory_model query string true "Model"
// @Param inventory_quantities_size query string true "Size"
// @Param inventory_quantities_color_color_code query string true "Color code"
// @Param inventory_quantities_gender query string true "Gender"
// @Param quantity_in_cart query int true "Quantity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /db/insertIntoCart [get]
func (h *CartHandler) InsertIntoCart(c echo.Context) error {
	var req InsertIntoCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.cartService.Add(c.Request().Context(), service.AddItemInput{
		Username:  req.Username,
		Model:     req.Model,
		Size:      req.Size,
		ColorCode: req.ColorCode,
		Gender:    req.Gender,
		Quantity:  req.Quantity,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "item added to cart"})
}

// DisplayCart godoc
// @Summary Cart contents as normalized text
// @Tags cart
// @Produce plain
// @Param username query string true "Username"
// @Success 200 {string} string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /db/displayCart [get]
func (h *CartHandler) DisplayCart(c echo.Context) error {
	text, err := h.catalogService.CartText(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, text)
}

// GetInventoryForCartItems godoc
// @Summary Cart quantities joined with stock on hand
// @Tags cart
// @Produce json
// @Param username query string true "Username"
// @Success 200 {array} model.CartStock
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/getInventoryForCartItems [get]
func (h *CartHandler) GetInventoryForCartItems(c echo.Context) error {
	stock, err := h.cartService.Stock(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stock)
}

// UpdateCartQuantity godoc
// @Summary Update the quantity of one cart line
// @Tags cart
// @Produce json
// @Param newQuantity query int true "New quantity"
// @Param username query string true "Username"
// @Param sequence query int true "Cart line sequence"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/updateCartQuantity [get]
func (h *CartHandler) UpdateCartQuantity(c echo.Context) error {
	var req UpdateCartQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// a missing (username, sequence) row is silent success
	if err := h.cartService.UpdateQuantity(c.Request().Context(), req.Username, req.Sequence, *req.NewQuantity); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "cart updated"})
}

// DeleteFromCart godoc
// @Summary Remove one cart line
// @Tags cart
// @Produce json
// @Param username query string true "Username"
// @Param sequence query int true "Cart line sequence"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/deleteFromCart [get]
func (h *CartHandler) DeleteFromCart(c echo.Context) error {
	var req DeleteFromCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// deleting a non-existent row is silent success
	if err := h.cartService.Remove(c.Request().Context(), req.Username, req.Sequence); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "cart item removed"})
}
