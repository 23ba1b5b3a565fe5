package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopfront/internal/errors"
	"shopfront/internal/service"
)

// CatalogHandler handles the read-side inventory endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// DisplayInventory godoc
// @Summary Filtered product list as normalized text
// @Tags catalog
// @Produce plain
// @Param color query string false "Color filter"
// @Param gender query string false "Gender filter"
// @Param styles query string false "Style filter"
// @Param size query string false "Size filter"
// @Success 200 {string} string
// @Failure 500 {object} errors.ErrorResponse
// @Router /db/displayInventory [get]
func (h *CatalogHandler) DisplayInventory(c echo.Context) error {
	// empty filters are valid and mean "unfiltered"
	text, err := h.catalogService.FilteredProducts(
		c.Request().Context(),
		c.QueryParam("color"),
		c.QueryParam("gender"),
		c.QueryParam("styles"),
		c.QueryParam("size"),
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, text)
}

// GetValuation godoc
// @Summary Inventory valuation as normalized text
// @Tags catalog
// @Produce plain
// @Param userInput query string false "Valuation scope key"
// @Success 200 {string} string
// @Failure 500 {object} errors.ErrorResponse
// @Router /db/getValuation [get]
func (h *CatalogHandler) GetValuation(c echo.Context) error {
	text, err := h.catalogService.Valuation(c.Request().Context(), c.QueryParam("userInput"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, text)
}
