package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
)

type Store interface {
	ProcessBatch(ctx context.Context, limit int, handle func(ctx context.Context, d entities.Delivery) error) (int, error)
}

type Publisher interface {
	Publish(ctx context.Context, d entities.Delivery) error
	Close() error
}

// Relay moves queued email and SMS deliveries to the message broker.
type Relay struct {
	logger    *slog.Logger
	store     Store
	publisher Publisher
	interval  time.Duration
	batchSize int
}

func NewRelay(logger *slog.Logger, store Store, publisher Publisher, cfg config.Outbox) *Relay {
	return &Relay{
		logger:    logger.With(slog.String("worker", "outbox")),
		store:     store,
		publisher: publisher,
		interval:  cfg.Interval,
		batchSize: max(cfg.BatchSize, 1),
	}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Flush(ctx); err != nil && !errors.Is(err, context.Canceled) {
				r.logger.Error("failed to relay deliveries", slog.Any("error", err))
			}
		}
	}
}

// Flush relays batches until the queue has no more pending deliveries. It
// stops after the first batch with a failed publish: those rows are pending
// again and would be picked straight back up, so they wait for the next tick.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	total := 0
	for {
		failed := 0
		n, err := r.store.ProcessBatch(ctx, r.batchSize, func(ctx context.Context, d entities.Delivery) error {
			err := r.publish(ctx, d)
			if err != nil {
				failed++
			}
			return err
		})
		total += n
		if err != nil {
			return total, err
		}
		if failed > 0 || n < r.batchSize {
			return total, nil
		}
	}
}

func (r *Relay) publish(ctx context.Context, d entities.Delivery) error {
	if err := r.publisher.Publish(ctx, d); err != nil {
		deliveriesTotal.WithLabelValues(string(d.Channel), "failed").Inc()
		r.logger.Warn("failed to publish delivery",
			slog.String("delivery_id", d.ID),
			slog.String("channel", string(d.Channel)),
			slog.Int("attempt", d.Attempts+1),
			slog.Any("error", err),
		)
		return err
	}
	deliveriesTotal.WithLabelValues(string(d.Channel), "published").Inc()
	r.logger.Debug("delivery published", slog.String("delivery_id", d.ID), slog.String("channel", string(d.Channel)))
	return nil
}

func (r *Relay) Close() error {
	return r.publisher.Close()
}
