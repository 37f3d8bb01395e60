package main

import (
	"context"
	"net/http"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type orderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	CreateOrder(ctx context.Context, in services.CreateOrderInput) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, patch services.OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// orderItemRequest accepts the unit price as either "price" or
// "price_at_purchase"; without both the product's current price is used.
type orderItemRequest struct {
	ProductID       int64    `json:"product_id" validate:"required,gt=0"`
	Quantity        *int     `json:"quantity" validate:"omitempty,gte=1"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	PriceAtPurchase *float64 `json:"price_at_purchase" validate:"omitempty,gte=0"`
}

type createOrderRequest struct {
	UserID      int64              `json:"user_id" validate:"required,gt=0"`
	Status      *string            `json:"status" validate:"omitempty,oneof=Pending Completed Failed"`
	TotalAmount *float64           `json:"total_amount" validate:"omitempty,gte=0"`
	Items       []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Status      *string  `json:"status" validate:"omitempty,oneof=Pending Completed Failed"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
}

func statusOf(s *string) *model.OrderStatus {
	if s == nil {
		return nil
	}
	st := model.OrderStatus(*s)
	return &st
}

func (r *createOrderRequest) toInput() services.CreateOrderInput {
	in := services.CreateOrderInput{
		UserID:      r.UserID,
		Status:      statusOf(r.Status),
		TotalAmount: r.TotalAmount,
		Items:       make([]services.OrderItemInput, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		price := it.Price
		if price == nil {
			price = it.PriceAtPurchase
		}
		in.Items = append(in.Items, services.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
		})
	}
	return in
}

// registerOrderRoutes mounts order endpoints. Orders embed their items and
// every item embeds its product.
//
//	POST   /orders         -> order + items in one transaction
//	PUT    /orders/:id     -> status / total_amount only
//	DELETE /orders/:id     -> removes the items too
func registerOrderRoutes(g *echo.Group, ordSvc orderService, logger *zap.Logger) {
	const entity = "Order"

	g.GET("/orders", func(c echo.Context) error {
		list, err := ordSvc.ListOrders(c.Request().Context())
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/orders/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		o, err := ordSvc.GetOrder(c.Request().Context(), id)
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, o)
	})

	g.POST("/orders", func(c echo.Context) error {
		var req createOrderRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		o, err := ordSvc.CreateOrder(c.Request().Context(), req.toInput())
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusCreated, o)
	})

	g.PUT("/orders/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		var req updateOrderRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		o, err := ordSvc.UpdateOrder(c.Request().Context(), id, services.OrderPatch{
			Status:      statusOf(req.Status),
			TotalAmount: req.TotalAmount,
		})
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, o)
	})

	g.DELETE("/orders/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		if err := ordSvc.DeleteOrder(c.Request().Context(), id); err != nil {
			return respondError(c, logger, entity, err)
		}
		return deleted(c, entity)
	})
}
