package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	pool        *pgxpool.Pool
	maxAttempts int
	now         func() time.Time
}

func NewPostgresStore(pool *pgxpool.Pool, maxAttempts int) *postgresStore {
	return &postgresStore{
		pool:        pool,
		maxAttempts: max(maxAttempts, 1),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

const selectPending = `
	SELECT id, channel, recipient, payload, status, attempts, created_at
	FROM delivery_queue
	WHERE status = 'pending'
	ORDER BY created_at
	LIMIT $1
	FOR UPDATE SKIP LOCKED`

// ProcessBatch locks up to limit pending deliveries and passes each to handle.
// Rows stay locked until the batch is settled, so concurrent relays never
// pick the same delivery.
func (s *postgresStore) ProcessBatch(ctx context.Context, limit int, handle func(ctx context.Context, d entities.Delivery) error) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, selectPending, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch deliveries: %w", err)
	}
	deliveries, err := pgx.CollectRows(rows, scanDelivery)
	if err != nil {
		return 0, fmt.Errorf("failed to scan deliveries: %w", err)
	}

	for _, d := range deliveries {
		if err := s.settle(ctx, tx, d, handle(ctx, d)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit tx: %w", err)
	}
	return len(deliveries), nil
}

func (s *postgresStore) settle(ctx context.Context, tx pgx.Tx, d entities.Delivery, handleErr error) error {
	var err error
	if handleErr == nil {
		_, err = tx.Exec(ctx,
			`UPDATE delivery_queue SET status = $2, attempts = attempts + 1, last_error = NULL, updated_at = $3 WHERE id = $1`,
			d.ID, entities.DeliverySent, s.now())
	} else {
		status := entities.DeliveryPending
		if d.Attempts+1 >= s.maxAttempts {
			status = entities.DeliveryFailed
		}
		_, err = tx.Exec(ctx,
			`UPDATE delivery_queue SET status = $2, attempts = attempts + 1, last_error = $3, updated_at = $4 WHERE id = $1`,
			d.ID, status, handleErr.Error(), s.now())
	}
	if err != nil {
		return fmt.Errorf("failed to update delivery %s: %w", d.ID, err)
	}
	return nil
}

func scanDelivery(row pgx.CollectableRow) (entities.Delivery, error) {
	var (
		d       entities.Delivery
		channel string
		payload []byte
	)
	if err := row.Scan(&d.ID, &channel, &d.Recipient, &payload, &d.Status, &d.Attempts, &d.CreatedAt); err != nil {
		return entities.Delivery{}, err
	}
	d.Channel = entities.Channel(channel)
	d.Payload = json.RawMessage(payload)
	return d, nil
}
