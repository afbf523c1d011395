// Package kafka publishes picking events to the inventory system.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"picking/internal/core/ports"
	"picking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// stockPickedMessage is the wire format of a stock decrement notification.
type stockPickedMessage struct {
	SKU         string    `json:"sku"`
	Warehouse   string    `json:"warehouse"`
	Quantity    int       `json:"quantity"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

// InventoryNotifier publishes stock-picked events to a Kafka topic consumed by
// the inventory system. Messages are keyed by SKU so decrements for one SKU
// stay ordered within a partition.
type InventoryNotifier struct {
	writer *kafka.Writer
}

// NewInventoryNotifier creates a notifier publishing to the given topic on the
// given brokers.
func NewInventoryNotifier(brokers []string, topic string) *InventoryNotifier {
	return &InventoryNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

// NotifyStockPicked publishes a stock decrement for a confirmed pick.
// Failures are wrapped as ExternalDependencyError; the caller decides whether
// delivery is critical.
func (n *InventoryNotifier) NotifyStockPicked(ctx context.Context, event ports.StockPicked) error {
	data, err := json.Marshal(stockPickedMessage{
		SKU:         event.SKU,
		Warehouse:   event.Warehouse,
		Quantity:    event.Quantity,
		ConfirmedAt: event.ConfirmedAt,
	})
	if err != nil {
		return errs.NewExternalDependencyError("kafka", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SKU),
		Value: data,
		Time:  event.ConfirmedAt,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errs.NewExternalDependencyError("kafka", err)
	}

	return nil
}

// Close releases the underlying Kafka writer.
func (n *InventoryNotifier) Close() error {
	return n.writer.Close()
}
