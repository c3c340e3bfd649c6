package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// OrderPublisher emits order lifecycle events for downstream consumers
// (kitchen planning, CRM). Publishing is best effort at checkout: a
// broker outage never fails the order.
type OrderPublisher interface {
	PublishOrderSubmitted(order *model.Order) error
	Close() error
}

// KafkaConfig configures the Kafka order publisher.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KafkaOrderPublisher implements OrderPublisher using a Sarama sync
// producer.
type KafkaOrderPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaOrderPublisher connects a sync producer to the brokers.
func NewKafkaOrderPublisher(cfg KafkaConfig) (*KafkaOrderPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("start kafka producer: %w", err)
	}

	log.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("kafka order publisher connected")
	return &KafkaOrderPublisher{producer: producer, topic: cfg.Topic}, nil
}

// orderSubmittedEvent is the wire payload for submitted orders.
type orderSubmittedEvent struct {
	EventType string       `json:"event_type"`
	Order     *model.Order `json:"order"`
	EmittedAt time.Time    `json:"emitted_at"`
}

// PublishOrderSubmitted emits one event keyed by order id, so all events
// for the same order land on the same partition.
func (p *KafkaOrderPublisher) PublishOrderSubmitted(order *model.Order) error {
	payload, err := json.Marshal(orderSubmittedEvent{
		EventType: "order_submitted",
		Order:     order,
		EmittedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(order.ID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send order event: %w", err)
	}

	log.Debug().
		Str("order_id", order.ID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("order event published")
	return nil
}

// Close shuts the producer down.
func (p *KafkaOrderPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher discards events. Used when Kafka is not configured.
type NoopPublisher struct{}

// PublishOrderSubmitted does nothing.
func (NoopPublisher) PublishOrderSubmitted(*model.Order) error { return nil }

// Close does nothing.
func (NoopPublisher) Close() error { return nil }
