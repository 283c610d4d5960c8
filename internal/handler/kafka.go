package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, buyer entities.Buyer, req entities.OrderRequest, idempotencyKey string) (entities.PlacedOrder, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq    messageWriter
	reader messageReader
	logger *slog.Logger
	placer OrderPlacer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, placer OrderPlacer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.OrdersTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		placer: placer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleOrderCommand(ctx, m); err != nil {
			commandsTotal.WithLabelValues("rejected").Inc()
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.String("key", string(m.Key)),
			)

			// the writer retries on its own; an undelivered DLQ message leaves the offset uncommitted
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			commandsTotal.WithLabelValues("dead_lettered").Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			offsetCommitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// handleOrderCommand places the order carried by m. The message key, when
// present, is the idempotency key so redelivered commands are replayed.
func (h *kafkaHandler) handleOrderCommand(ctx context.Context, m kafka.Message) error {
	commandsInFlight.Inc()
	defer commandsInFlight.Dec()
	start := time.Now()
	defer func() { commandDuration.Observe(time.Since(start).Seconds()) }()

	var cmd OrderCommand
	if err := json.Unmarshal(m.Value, &cmd); err != nil {
		return fmt.Errorf("failed to unmarshal order command: %w", err)
	}
	if cmd.Buyer.UID == "" {
		return fmt.Errorf("order command without buyer: %w", entities.ErrUnauthorized)
	}

	key := strings.TrimSpace(string(m.Key))
	if len(key) > maxIdempotencyKeyLen {
		verr := entities.NewValidationError()
		verr.Add("key", "must be at most 255 characters")
		return verr
	}

	placed, err := h.placer.PlaceOrder(ctx, BuyerToEntity(cmd.Buyer), OrderRequestToEntity(cmd.Order), key)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	if placed.Replayed {
		commandsTotal.WithLabelValues("replayed").Inc()
	} else {
		commandsTotal.WithLabelValues("placed").Inc()
	}
	h.logger.Debug("order command handled",
		slog.String("order_id", placed.Order.ID),
		slog.Bool("replayed", placed.Replayed),
	)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dlq := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dlq)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
