package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type DefaultKafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewDefaultKafkaPublisher publishes contract events to topic. Writes are
// synchronous; callers decide whether to wait for them.
func NewDefaultKafkaPublisher(brokers []string, topic string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           10 * time.Second,
		},
		topic: topic,
	}
}

func (k *DefaultKafkaPublisher) Publish(ctx context.Context, topic string, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	now := time.Now()
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  now,
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(ctx, km...)
}

// PublishContractEvent keys messages by contract id so that every event of
// one contract lands on the same partition in commit order.
func (k *DefaultKafkaPublisher) PublishContractEvent(ctx context.Context, event domain.ContractEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal contract event: %w", err)
	}

	return k.Publish(ctx, k.topic, domain.Message{Key: []byte(event.ContractID), Value: v})
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
