package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"FredStoreAPI/internal/model"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	hang   bool
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if w.hang {
		<-ctx.Done()
		return ctx.Err()
	}
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishKeysByOrder(t *testing.T) {
	w := &fakeWriter{}
	p := &OrderEventPublisher{writer: w, timeout: time.Second}
	ev := model.OrderEvent{
		EventID:     "e-1",
		Type:        model.OrderCreated,
		OrderID:     12,
		UserID:      3,
		Status:      model.OrderStatusPending,
		TotalAmount: 41.98,
		OccurredAt:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), ev))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "ORDER#12", string(w.msgs[0].Key))
	assert.Equal(t, "order.created", string(w.msgs[0].Headers[0].Value))

	var decoded model.OrderEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, ev, decoded)
}

func TestPublishWrapsWriterError(t *testing.T) {
	boom := errors.New("no brokers")
	p := &OrderEventPublisher{writer: &fakeWriter{err: boom}, timeout: time.Second}

	err := p.Publish(context.Background(), model.OrderEvent{EventID: "e-2"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "e-2")
}

func TestPublishGivesUpAfterTimeout(t *testing.T) {
	p := &OrderEventPublisher{writer: &fakeWriter{hang: true}, timeout: 50 * time.Millisecond}

	start := time.Now()
	err := p.Publish(context.Background(), model.OrderEvent{EventID: "e-3"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewOrderEventPublisherUsesTimeout(t *testing.T) {
	p := NewOrderEventPublisher([]string{"localhost:9092"}, "order-events", 2*time.Second)
	defer p.Close()

	assert.Equal(t, 2*time.Second, p.timeout)
	w, ok := p.writer.(*kafkago.Writer)
	require.True(t, ok)
	assert.Equal(t, 1, w.BatchSize)
	assert.Equal(t, 2*time.Second, w.WriteTimeout)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, (&OrderEventPublisher{writer: w}).Close())
	assert.True(t, w.closed)
}
