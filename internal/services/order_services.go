package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderService struct {
	Repo   *repository.OrderRepository
	Events EventPublisher
	Logger *zap.Logger
	Now    func() time.Time
}

func NewOrderService(r *repository.OrderRepository, events EventPublisher, logger *zap.Logger) *OrderService {
	if events == nil {
		events = NopPublisher{}
	}
	return &OrderService{Repo: r, Events: events, Logger: logger, Now: time.Now}
}

// OrderItemInput is one requested line. A nil Price freezes the product's
// current price; a nil Quantity means 1.
type OrderItemInput struct {
	ProductID int64
	Quantity  *int
	Price     *float64
}

type CreateOrderInput struct {
	UserID      int64
	Status      *model.OrderStatus
	TotalAmount *float64
	Items       []OrderItemInput
}

// OrderPatch carries the header fields PUT /orders/{id} may change.
type OrderPatch struct {
	Status      *model.OrderStatus
	TotalAmount *float64
}

// itemsTotal is sum(quantity * price) rounded to the cent.
func itemsTotal(items []model.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.PriceAtPurchase).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2)
}

func sameAmount(total decimal.Decimal, amount float64) bool {
	return decimal.NewFromFloat(amount).Round(2).Equal(total)
}

func checkCreateOrder(in CreateOrderInput) error {
	v := &ValidationError{}
	if in.UserID <= 0 {
		v.add("user_id", "is required")
	}
	if in.Status != nil && !in.Status.Valid() {
		v.add("status", "must be one of Pending, Completed, Failed")
	}
	if in.TotalAmount != nil && *in.TotalAmount < 0 {
		v.add("total_amount", "must be >= 0")
	}
	if len(in.Items) == 0 {
		v.add("items", "must contain at least one item")
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			v.add(fmt.Sprintf("items[%d].product_id", i), "is required")
		}
		if it.Quantity != nil && *it.Quantity < 1 {
			v.add(fmt.Sprintf("items[%d].quantity", i), "must be >= 1")
		}
		if it.Price != nil && *it.Price < 0 {
			v.add(fmt.Sprintf("items[%d].price", i), "must be >= 0")
		}
	}
	return v.err()
}

func (s *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.Repo.List(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateOrder writes the order and all of its items in one transaction and
// returns it re-read with every item's product embedded.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if err := checkCreateOrder(in); err != nil {
		return nil, err
	}

	o := &model.Order{
		UserID:    in.UserID,
		CreatedAt: s.Now().UTC(),
		Status:    model.OrderStatusPending,
		Items:     make([]model.OrderItem, 0, len(in.Items)),
	}
	if in.Status != nil {
		o.Status = *in.Status
	}

	var created *model.Order
	err := repository.WithTx(ctx, s.Repo.DB, func(tx pgx.Tx) error {
		orders := repository.NewOrderRepository(tx)
		products := repository.NewProductRepository(tx)

		for i, it := range in.Items {
			item := model.OrderItem{ProductID: it.ProductID, Quantity: 1}
			if it.Quantity != nil {
				item.Quantity = *it.Quantity
			}
			if it.Price != nil {
				item.PriceAtPurchase = *it.Price
			} else {
				p, err := products.GetByID(ctx, it.ProductID)
				if errors.Is(err, repository.ErrNotFound) {
					return invalid(fmt.Sprintf("items[%d].product_id", i), "product not found")
				}
				if err != nil {
					return err
				}
				item.PriceAtPurchase = p.Price
			}
			o.Items = append(o.Items, item)
		}

		total := itemsTotal(o.Items)
		if in.TotalAmount != nil && !sameAmount(total, *in.TotalAmount) {
			return invalid("total_amount", fmt.Sprintf("does not match the item total %s", total.StringFixed(2)))
		}
		o.TotalAmount = total.InexactFloat64()

		if err := orders.Create(ctx, o); err != nil {
			return err
		}
		var err error
		created, err = orders.GetByID(ctx, o.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("order created",
		zap.Int64("order_id", created.ID),
		zap.Int64("user_id", created.UserID),
		zap.Int("items", len(created.Items)),
		zap.Float64("total_amount", created.TotalAmount),
	)
	publish(ctx, s.Events, s.Logger, newOrderEvent(model.OrderCreated, created, s.Now()))
	return created, nil
}

// UpdateOrder changes the status and/or total of an order. A new total must
// still equal the sum of the order's items.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, patch OrderPatch) (*model.Order, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, invalid("status", "must be one of Pending, Completed, Failed")
	}

	var (
		updated   *model.Order
		oldStatus model.OrderStatus
	)
	err := repository.WithTx(ctx, s.Repo.DB, func(tx pgx.Tx) error {
		orders := repository.NewOrderRepository(tx)
		o, err := orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		oldStatus = o.Status

		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.TotalAmount != nil {
			total := itemsTotal(o.Items)
			if !sameAmount(total, *patch.TotalAmount) {
				return invalid("total_amount", fmt.Sprintf("does not match the item total %s", total.StringFixed(2)))
			}
			o.TotalAmount = total.InexactFloat64()
		}
		if err := orders.UpdateHeader(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != oldStatus {
		s.Logger.Info("order status changed",
			zap.Int64("order_id", updated.ID),
			zap.String("from", string(oldStatus)),
			zap.String("to", string(updated.Status)),
		)
		publish(ctx, s.Events, s.Logger, newOrderEvent(model.OrderStatusChanged, updated, s.Now()))
	}
	return updated, nil
}

// DeleteOrder removes the order together with its items.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	var deleted *model.Order
	err := repository.WithTx(ctx, s.Repo.DB, func(tx pgx.Tx) error {
		orders := repository.NewOrderRepository(tx)
		o, err := orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := orders.Delete(ctx, id); err != nil {
			return err
		}
		deleted = o
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info("order deleted", zap.Int64("order_id", id))
	publish(ctx, s.Events, s.Logger, newOrderEvent(model.OrderDeleted, deleted, s.Now()))
	return nil
}
