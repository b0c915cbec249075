package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"github.com/tiendita/cart-ledger/internal/model"
)

// KafkaPublisher writes purchase records as JSON messages keyed by
// record id.
type KafkaPublisher struct {
	writer *kafka.Writer
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaPublisher(cfg *KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) PublishPurchase(ctx context.Context, record model.PurchaseRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode purchase event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(record.ID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("publish purchase event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
