package main

import (
	"context"
	"net/http"

	"FredStoreAPI/internal/model"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type productService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

// productRequest is the payload of both POST and PUT /products.
type productRequest struct {
	Name         string      `json:"name" validate:"required"`
	Description  *string     `json:"description"`
	Category     *string     `json:"category"`
	Price        *float64    `json:"price" validate:"required,gte=0"`
	Subscription *bool       `json:"subscription"`
	LicenseType  *string     `json:"license_type"`
	Version      *string     `json:"version"`
	Platform     *string     `json:"platform"`
	Stock        *int        `json:"stock" validate:"omitempty,gte=0"`
	ReleaseDate  *model.Date `json:"release_date"`
	IsPromoted   *bool       `json:"is_promoted"`
}

func (r *productRequest) toModel() *model.Product {
	p := &model.Product{
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Price:        *r.Price,
		Subscription: true,
		LicenseType:  r.LicenseType,
		Version:      r.Version,
		Platform:     r.Platform,
	}
	if r.Subscription != nil {
		p.Subscription = *r.Subscription
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.ReleaseDate != nil {
		p.ReleaseDate = *r.ReleaseDate
	}
	if r.IsPromoted != nil {
		p.IsPromoted = *r.IsPromoted
	}
	return p
}

// registerProductRoutes mounts the product catalog endpoints:
//
//	GET    /products
//	GET    /products/:id
//	POST   /products
//	PUT    /products/:id     -> full replace, omitted release_date is kept
//	DELETE /products/:id     -> 409 while orders or subscriptions reference it
func registerProductRoutes(g *echo.Group, ps productService, logger *zap.Logger) {
	const entity = "Product"

	g.GET("/products", func(c echo.Context) error {
		list, err := ps.ListProducts(c.Request().Context())
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		p, err := ps.GetProduct(c.Request().Context(), id)
		if err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	g.POST("/products", func(c echo.Context) error {
		var req productRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		p := req.toModel()
		if err := ps.CreateProduct(c.Request().Context(), p); err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusCreated, p)
	})

	g.PUT("/products/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		var req productRequest
		if err := bindRequest(c, &req); err != nil {
			return respondError(c, logger, entity, err)
		}
		p := req.toModel()
		p.ID = id
		if err := ps.UpdateProduct(c.Request().Context(), p); err != nil {
			return respondError(c, logger, entity, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	g.DELETE("/products/:id", func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return invalidID(c)
		}
		if err := ps.DeleteProduct(c.Request().Context(), id); err != nil {
			return respondError(c, logger, entity, err)
		}
		return deleted(c, entity)
	})
}
