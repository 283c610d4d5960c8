package outbox

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	topics map[entities.Channel]string
}

func NewKafkaPublisher(cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
		topics: map[entities.Channel]string{
			entities.ChannelEmail: cfg.EmailTopic,
			entities.ChannelSMS:   cfg.SMSTopic,
		},
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, d entities.Delivery) error {
	topic, ok := p.topics[d.Channel]
	if !ok {
		return fmt.Errorf("no topic for channel %q", d.Channel)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(d.Recipient),
		Value: d.Payload,
		Headers: []kafka.Header{
			{Key: "delivery_id", Value: []byte(d.ID)},
			{Key: "channel", Value: []byte(d.Channel)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
