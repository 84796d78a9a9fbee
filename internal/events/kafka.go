package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"bookstore/internal/config"
	"bookstore/internal/entities"

	"github.com/segmentio/kafka-go"
)

type orderPlacedMessage struct {
	OrderID            int64 `json:"order_id"`
	ConfirmationNumber int   `json:"confirmation_number"`
	Amount             int   `json:"amount"`
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// PublishOrderPlaced пишет событие с ключом order_id, чтобы события
// одного заказа попадали в одну партицию.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, ev entities.OrderPlacedEvent) error {
	value, err := json.Marshal(orderPlacedMessage{
		OrderID:            ev.OrderID,
		ConfirmationNumber: ev.ConfirmationNumber,
		Amount:             ev.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order placed event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.OrderID, 10)),
		Value: value,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
