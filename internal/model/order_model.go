package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusFailed    OrderStatus = "Failed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusFailed:
		return true
	}
	return false
}

// Order represents an entry in the orders table together with the items it owns.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	CreatedAt   time.Time   `json:"created_at"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

// OrderItem represents a row in the order_items table. PriceAtPurchase is the
// product price frozen when the order was placed.
type OrderItem struct {
	ID              int64    `json:"id"`
	OrderID         int64    `json:"order_id"`
	ProductID       int64    `json:"product_id"`
	Quantity        int      `json:"quantity"`
	PriceAtPurchase float64  `json:"price_at_purchase"`
	Product         *Product `json:"product"`
}
