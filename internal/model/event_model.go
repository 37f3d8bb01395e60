package model

import "time"

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderStatusChanged OrderEventType = "order.status_changed"
	OrderDeleted       OrderEventType = "order.deleted"
)

// OrderEvent is published after an order mutation has been committed.
type OrderEvent struct {
	EventID     string         `json:"event_id"`
	Type        OrderEventType `json:"type"`
	OrderID     int64          `json:"order_id"`
	UserID      int64          `json:"user_id"`
	Status      OrderStatus    `json:"status"`
	TotalAmount float64        `json:"total_amount"`
	Items       []OrderItem    `json:"items,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}
