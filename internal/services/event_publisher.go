package services

import (
	"context"
	"time"

	"FredStoreAPI/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher delivers order events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, ev model.OrderEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.OrderEvent) error { return nil }
func (NopPublisher) Close() error                                    { return nil }

func newOrderEvent(typ model.OrderEventType, o *model.Order, at time.Time) model.OrderEvent {
	ev := model.OrderEvent{
		EventID:     uuid.NewString(),
		Type:        typ,
		OrderID:     o.ID,
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		OccurredAt:  at.UTC(),
	}
	if typ == model.OrderCreated {
		ev.Items = o.Items
	}
	return ev
}

// publish never fails the caller: the write it describes is already committed.
func publish(ctx context.Context, pub EventPublisher, logger *zap.Logger, ev model.OrderEvent) {
	if err := pub.Publish(ctx, ev); err != nil {
		logger.Warn("publish order event failed",
			zap.String("event_id", ev.EventID),
			zap.String("type", string(ev.Type)),
			zap.Int64("order_id", ev.OrderID),
			zap.Error(err),
		)
		return
	}
	logger.Debug("order event published",
		zap.String("event_id", ev.EventID),
		zap.String("type", string(ev.Type)),
		zap.Int64("order_id", ev.OrderID),
	)
}
