package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shopfront/internal/handler"
	"shopfront/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *session.Middleware,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sessions.Load)

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Pages
	e.GET("/", pageHandler.Index)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/admin", authHandler.AdminPage, sessions.RequireAuthenticated)
	e.GET("/valuations", pageHandler.Valuations)
	e.GET("/cart.html", pageHandler.CartPage)
	e.GET("/signedUp.html", pageHandler.SignedUp)
	e.GET("/ordered", orderHandler.OrderedPage)
	e.GET("/reports", pageHandler.Reports)

	// Normalized-text query endpoints
	db := e.Group("/db")
	db.GET("/displayInventory", catalogHandler.DisplayInventory)
	db.GET("/getValuation", catalogHandler.GetValuation)
	db.GET("/insertIntoCart", cartHandler.InsertIntoCart)
	db.GET("/displayCart", cartHandler.DisplayCart)

	// JSON API used by the cart front-end
	api := e.Group("/api")
	api.GET("/getInventoryForCartItems", cartHandler.GetInventoryForCartItems)
	api.GET("/updateCartQuantity", cartHandler.UpdateCartQuantity)
	api.GET("/deleteFromCart", cartHandler.DeleteFromCart)
	api.GET("/createOrder", orderHandler.CreateOrder)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
