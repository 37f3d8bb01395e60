package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"FredStoreAPI/internal/model"

	kafkago "github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// OrderEventPublisher writes order events to a Kafka topic, keyed by order id
// so every event of one order lands on the same partition.
type OrderEventPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewOrderEventPublisher builds a writer that flushes every message at once.
// A single Publish gives up after timeout, retries included.
func NewOrderEventPublisher(brokers []string, topic string, timeout time.Duration) *OrderEventPublisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		BatchSize:              1,
		MaxAttempts:            3,
		WriteTimeout:           timeout,
	}
	return &OrderEventPublisher{writer: w, timeout: timeout}
}

func (p *OrderEventPublisher) Publish(ctx context.Context, ev model.OrderEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg := kafkago.Message{
		Key:   []byte(fmt.Sprintf("ORDER#%d", ev.OrderID)),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
			{Key: "event_id", Value: []byte(ev.EventID)},
		},
		Time: ev.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order event %s: %w", ev.EventID, err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
