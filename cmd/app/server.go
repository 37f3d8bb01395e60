package main

import (
	"context"
	"net/http"
	"time"

	"FredStoreAPI/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type handlers struct {
	products      productService
	users         userService
	orders        orderService
	subscriptions subscriptionService
}

// newServer assembles the echo instance: middleware, validator and every
// route. It does not start listening.
func newServer(logger *zap.Logger, db pinger, h handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "WELCOME TO FRED'S STORE"})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "database": "down"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "database": "up"})
	})

	api := e.Group("")
	registerProductRoutes(api, h.products, logger)
	registerUserRoutes(api, h.users, logger)
	registerOrderRoutes(api, h.orders, logger)
	registerSubscriptionRoutes(api, h.subscriptions, logger)

	return e
}
