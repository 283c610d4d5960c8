package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
	amqp "github.com/rabbitmq/amqp091-go"
)

type rabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queues  map[entities.Channel]string
}

// NewRabbitMQPublisher dials the broker, retrying while it starts up, and
// declares a durable queue per delivery channel.
func NewRabbitMQPublisher(cfg config.RabbitMQ) (*rabbitPublisher, error) {
	var conn *amqp.Connection
	dial := func() error {
		var err error
		conn, err = amqp.Dial(cfg.URL)
		return err
	}
	retry := utils.RetryConfig{MaxAttempts: 10, InitialDelay: 500 * time.Millisecond, MaxDelay: 2 * time.Second, Multiplier: 2}
	if err := utils.Retry(retry, dial); err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	queues := map[entities.Channel]string{
		entities.ChannelEmail: cfg.EmailQueue,
		entities.ChannelSMS:   cfg.SMSQueue,
	}
	for _, q := range queues {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", q, err)
		}
	}

	return &rabbitPublisher{conn: conn, channel: ch, queues: queues}, nil
}

func (p *rabbitPublisher) Publish(ctx context.Context, d entities.Delivery) error {
	queue, ok := p.queues[d.Channel]
	if !ok {
		return fmt.Errorf("no queue for channel %q", d.Channel)
	}

	err := p.channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		MessageId:    d.ID,
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    d.CreatedAt,
		Body:         d.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}
	return nil
}

func (p *rabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
