package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	now func() time.Time
}

type Option func(*postgresRepo)

// WithPlaceholder overrides the bind style, e.g. sq.Question for SQLite.
func WithPlaceholder(f sq.PlaceholderFormat) Option {
	return func(r *postgresRepo) {
		r.qb = sq.StatementBuilder.PlaceholderFormat(f)
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *postgresRepo) {
		r.now = now
	}
}

func NewPostgresRepo(db *sqlx.DB, opts ...Option) *postgresRepo {
	r := &postgresRepo{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *postgresRepo) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(
		"id", "seller_id", "title", "price", "available_quantity", "version", "updated_at").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(p)
}

// ReserveStock decrements available_quantity by qty only if enough stock is
// left at the moment of the write. When the conditional update touches no row
// the current quantity is re-read in the same transaction to report why.
func (r *postgresRepo) ReserveStock(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("available_quantity", sq.Expr("available_quantity - ?", qty)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", r.now()).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"available_quantity": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if n == 1 {
		return nil
	}

	query, args = r.qb.Select("available_quantity").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var available int
	err = r.getContext(ctx, &available, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return &entities.ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return fmt.Errorf("failed to read stock: %w", err)
	}

	return &entities.InsufficientStockError{ProductID: productID, Requested: qty, Available: available}
}

// CreateOrder inserts the order header. A second order with the same buyer
// and idempotency key is ignored and reported as ErrDuplicateRequest.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.BuyerID, nullString(o.IdempotencyKey), o.Subtotal, o.DeliveryFee, o.Total,
			string(o.PaymentMethod), o.Shipping.Street, o.Shipping.City, o.Shipping.Postcode, o.Shipping.Phone,
			string(o.Status), o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (buyer_id, idempotency_key) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	if n == 0 {
		return entities.ErrDuplicateRequest
	}
	return nil
}

func (r *postgresRepo) SaveLineItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.SellerID, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save line items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *postgresRepo) GetOrderByIdempotencyKey(ctx context.Context, buyerID, key string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"buyer_id": buyerID, "idempotency_key": key})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("product_id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get line items: %w", err)
	}

	return OrderToEntity(order, items)
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
