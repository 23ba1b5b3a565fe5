package main

import (
	"log"
	"net/http"

	_ "shopfront/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shopfront/internal/auth"
	"shopfront/internal/cache"
	"shopfront/internal/config"
	"shopfront/internal/db"
	"shopfront/internal/handler"
	"shopfront/internal/repository"
	"shopfront/internal/router"
	"shopfront/internal/service"
	"shopfront/internal/session"
	"shopfront/internal/view"
)

// @title Shopfront API
// @version 1.0
// @description Storefront backend: session-gated authentication, catalog queries, and a persistent cart through to checkout.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	redisClient := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cacheClient := cache.New(redisClient)

	// Session store: in-memory for a single instance, Redis when configured
	var sessionStore session.Store
	switch cfg.SessionBackend {
	case "redis":
		sessionStore = session.NewRedisStore(redisClient, cfg.SessionTTL)
	default:
		sessionStore = session.NewMemoryStore(cfg.SessionTTL)
	}

	rememberToken := auth.NewRememberToken(cfg.RememberSecret)
	sessionMW := session.NewMiddleware(sessionStore, rememberToken)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	inventoryRepo := repository.NewInventoryRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, auth.NewVerifier(), sessionStore, rememberToken)
	cartService := service.NewCartService(cartRepo)
	catalogService := service.NewCatalogService(inventoryRepo, cartRepo, cacheClient)
	checkoutService := service.NewCheckoutService(orderRepo)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(cartService)
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService, catalogService)
	orderHandler := handler.NewOrderHandler(checkoutService)

	// Register routes
	router.Register(
		e,
		sessionMW,
		pageHandler,
		authHandler,
		catalogHandler,
		cartHandler,
		orderHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
