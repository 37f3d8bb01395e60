package main

import (
	"context"
	"net/http"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type userService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error
	UpdateUser(ctx context.Context, id int64, patch services.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUserOrders(ctx context.Context, id int64) ([]model.Order, error)
	ListUserSubscriptions(ctx context.Context, id int64) ([]model.Subscription, error)
}

type createUserRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required"`
	Country string `json:"country" validate:"required"`
}

type updateUserRequest struct {
	Email   *string `json:"email" validate:"omitempty,email"`
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

// registerUserRoutes mounts user CRUD plus the per-user collections:
//
//	GET /users/:id/orders
//	GET /users/:id/subscriptions
func registerUserRoutes(g *echo.Group, us userService, logger *zap.Logger) {
	const entity = "User"

	g.GET("/users", func(c echo.Context) error {
		list, err := us.ListUsers(c.Request().Context())
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/users/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		u, err := us.GetUser(c.Request().Context(), id)
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, u)
	})

	g.POST("/users", func(c echo.Context) error {
		var req createUserRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		u := &model.User{Email: req.Email, Name: req.Name, Country: req.Country}
		if err := us.CreateUser(c.Request().Context(), u); err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusCreated, u)
	})

	g.PUT("/users/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		var req updateUserRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		u, err := us.UpdateUser(c.Request().Context(), id, services.UserPatch{
			Email:   req.Email,
			Name:    req.Name,
			Country: req.Country,
		})
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, u)
	})

	g.DELETE("/users/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		if err := us.DeleteUser(c.Request().Context(), id); err != nil {
			return respondError(c, logger, entity, err)
		}
		return deleted(c, entity)
	})

	g.GET("/users/:id/orders", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		list, err := us.ListUserOrders(c.Request().Context(), id)
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/users/:id/subscriptions", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		list, err := us.ListUserSubscriptions(c.Request().Context(), id)
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, list)
	})
}
