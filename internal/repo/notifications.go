package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (r *postgresRepo) AppendTransaction(ctx context.Context, t entities.Transaction) error {
	query, args := r.qb.Insert("transactions").
		Columns("id", "order_id", "profile_id", "type", "amount", "status", "provider", "created_at").
		Values(t.ID, t.OrderID, t.ProfileID, t.Type, t.Amount, t.Status, t.Provider, t.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

func (r *postgresRepo) CreateNotification(ctx context.Context, n entities.Notification) error {
	query, args := r.qb.Insert("notifications").
		Columns("id", "user_id", "type", "title", "message", "link_url", "read", "created_at").
		Values(n.ID, n.UserID, n.Type, n.Title, n.Message, n.LinkURL, n.Read, n.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetProfile(ctx context.Context, profileID string) (entities.Profile, error) {
	query, args := r.qb.Select("id", "display_name", "email", "phone").
		From("profiles").
		Where(sq.Eq{"id": profileID}).
		MustSql()

	var p Profile
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Profile{}, entities.ErrProfileNotFound
	}
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return ProfileToEntity(p), nil
}

func (r *postgresRepo) EnqueueEmail(ctx context.Context, e entities.Email) error {
	return r.enqueue(ctx, entities.ChannelEmail, e.To, e)
}

func (r *postgresRepo) EnqueueSMS(ctx context.Context, s entities.SMS) error {
	return r.enqueue(ctx, entities.ChannelSMS, s.To, s)
}

func (r *postgresRepo) enqueue(ctx context.Context, channel entities.Channel, recipient string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", channel, err)
	}

	now := r.now()
	query, args := r.qb.Insert("delivery_queue").
		Columns("id", "channel", "recipient", "payload", "status", "attempts", "created_at", "updated_at").
		Values(uuid.NewString(), string(channel), recipient, string(body), entities.DeliveryPending, 0, now, now).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", channel, err)
	}
	return nil
}
