package main

import (
	"context"
	"net/http"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type subscriptionService interface {
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)
	GetSubscription(ctx context.Context, id int64) (*model.Subscription, error)
	CreateSubscription(ctx context.Context, s *model.Subscription) (*model.Subscription, error)
	UpdateSubscription(ctx context.Context, id int64, patch services.SubscriptionPatch) (*model.Subscription, error)
	DeleteSubscription(ctx context.Context, id int64) error
}

type createSubscriptionRequest struct {
	UserID    int64       `json:"user_id" validate:"required,gt=0"`
	ProductID int64       `json:"product_id" validate:"required,gt=0"`
	StartDate *model.Date `json:"start_date" validate:"required"`
	EndDate   *model.Date `json:"end_date" validate:"required"`
	AutoRenew *bool       `json:"auto_renew"`
}

// updateSubscriptionRequest has no user, product or start date: those are
// fixed once the subscription exists.
type updateSubscriptionRequest struct {
	EndDate   *model.Date `json:"end_date"`
	AutoRenew *bool       `json:"auto_renew"`
}

func registerSubscriptionRoutes(g *echo.Group, ss subscriptionService, logger *zap.Logger) {
	const entity = "Subscription"

	g.GET("/subscriptions", func(c echo.Context) error {
		list, err := ss.ListSubscriptions(c.Request().Context())
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/subscriptions/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		s, err := ss.GetSubscription(c.Request().Context(), id)
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, s)
	})

	g.POST("/subscriptions", func(c echo.Context) error {
		var req createSubscriptionRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		sub := &model.Subscription{
			UserID:    req.UserID,
			ProductID: req.ProductID,
			StartDate: *req.StartDate,
			EndDate:   *req.EndDate,
			AutoRenew: true,
		}
		if req.AutoRenew != nil {
			sub.AutoRenew = *req.AutoRenew
		}
		created, err := ss.CreateSubscription(c.Request().Context(), sub)
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusCreated, created)
	})

	g.PUT("/subscriptions/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		var req updateSubscriptionRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		s, err := ss.UpdateSubscription(c.Request().Context(), id, services.SubscriptionPatch{
			EndDate:   req.EndDate,
			AutoRenew: req.AutoRenew,
		})
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, s)
	})

	g.DELETE("/subscriptions/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		if err := ss.DeleteSubscription(c.Request().Context(), id); err != nil {
			return respondError(c, logger, entity, err)
		}
		return deleted(c, entity)
	})
}
