package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	// ReserveStock must only succeed if qty units are available at the moment of the write.
	ReserveStock(ctx context.Context, productID string, qty int) error
	CreateOrder(ctx context.Context, o entities.Order) error
	SaveLineItems(ctx context.Context, orderID string, items []entities.LineItem) error

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByIdempotencyKey(ctx context.Context, buyerID, key string) (entities.Order, error)
}

type Ledger interface {
	AppendTransaction(ctx context.Context, t entities.Transaction) error
}

type Notifier interface {
	OrderPlaced(ctx context.Context, order entities.Order, buyer entities.Buyer)
}

type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type Validator interface {
	OrderRequest(req entities.OrderRequest) error
}

type Option func(*orderService)

func WithClock(now func() time.Time) Option {
	return func(s *orderService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *orderService) {
		s.newID = newID
	}
}

func WithRetryConfig(cfg utils.RetryConfig) Option {
	return func(s *orderService) {
		s.retry = cfg
	}
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	ledger    Ledger
	notifier  Notifier
	cache     Cache
	validator Validator
	provider  string

	now   func() time.Time
	newID func() string
	retry utils.RetryConfig
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	ledger Ledger,
	notifier Notifier,
	cache Cache,
	validator Validator,
	provider string,
	opts ...Option,
) *orderService {
	s := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		ledger:    ledger,
		notifier:  notifier,
		cache:     cache,
		validator: validator,
		provider:  provider,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder validates the request, reserves stock and persists the order in
// one transaction, then records the ledger entry and notifies the parties.
// Only validation, reservation and commit errors are returned.
func (s *orderService) PlaceOrder(ctx context.Context, buyer entities.Buyer, req entities.OrderRequest, idempotencyKey string) (entities.PlacedOrder, error) {
	start := time.Now()
	placed, err := s.placeOrder(ctx, buyer, req, idempotencyKey)

	placeOrderDuration.Observe(time.Since(start).Seconds())
	ordersPlaced.WithLabelValues(placeResult(placed, err)).Inc()

	return placed, err
}

func (s *orderService) placeOrder(ctx context.Context, buyer entities.Buyer, req entities.OrderRequest, key string) (entities.PlacedOrder, error) {
	if buyer.UID == "" {
		return entities.PlacedOrder{}, entities.ErrUnauthorized
	}

	if err := s.validator.OrderRequest(req); err != nil {
		return entities.PlacedOrder{}, err
	}

	if key != "" {
		existing, err := s.repo.GetOrderByIdempotencyKey(ctx, buyer.UID, key)
		if err == nil {
			s.logger.Info("order replayed", slog.String("order_id", existing.ID), slog.String("buyer_id", buyer.UID))
			return entities.PlacedOrder{Order: existing, Replayed: true}, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			s.logger.Error("failed to look up idempotency key", slog.String("buyer_id", buyer.UID), slog.Any("error", err))
			return entities.PlacedOrder{}, &entities.CommitError{Err: err}
		}
	}

	items, err := s.preflight(ctx, req)
	if err != nil {
		return entities.PlacedOrder{}, err
	}

	order, err := entities.NewOrder(s.newID(), buyer.UID, items, req.DeliveryFee,
		entities.PaymentMethod(req.PaymentMethod), req.ShippingAddress, s.now())
	if err != nil {
		return entities.PlacedOrder{}, &entities.CommitError{Err: err}
	}
	order.IdempotencyKey = key

	err = s.commit(ctx, order)
	switch {
	case err == nil:
	case errors.Is(err, entities.ErrDuplicateRequest):
		return s.replayAfterConflict(ctx, buyer.UID, key)
	case errors.Is(err, entities.ErrInsufficientStock), errors.Is(err, entities.ErrProductNotFound):
		stockConflicts.Inc()
		s.logger.Info("stock changed before commit", slog.String("buyer_id", buyer.UID), slog.Any("error", err))
		return entities.PlacedOrder{}, err
	default:
		s.logger.Error("failed to commit order", slog.String("buyer_id", buyer.UID), slog.Any("error", err))
		return entities.PlacedOrder{}, &entities.CommitError{Err: err}
	}

	s.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("buyer_id", buyer.UID),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.Total.StringFixed(2)),
	)

	// The order is committed, so the follow-up steps must not be cut short
	// by the caller going away.
	after := context.WithoutCancel(ctx)
	s.recordLedger(after, order)
	s.notifier.OrderPlaced(after, order, buyer)
	s.cache.Set(order.ID, order)

	return entities.PlacedOrder{Order: order}, nil
}

// preflight checks every product without writing anything. Seller ids come
// from the product records, prices from the validated cart.
func (s *orderService) preflight(ctx context.Context, req entities.OrderRequest) ([]entities.LineItem, error) {
	cart := req.MergedItems()
	items := make([]entities.LineItem, 0, len(cart))

	for _, it := range cart {
		product, err := s.repo.GetProduct(ctx, it.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			return nil, err
		}
		if err != nil {
			s.logger.Error("failed to read product", slog.String("product_id", it.ProductID), slog.Any("error", err))
			return nil, &entities.CommitError{Err: err}
		}

		if product.AvailableQuantity < it.Quantity {
			return nil, &entities.InsufficientStockError{
				ProductID: product.ID,
				Requested: it.Quantity,
				Available: product.AvailableQuantity,
			}
		}

		if it.SellerID != product.SellerID {
			s.logger.Warn("cart seller differs from product seller",
				slog.String("product_id", product.ID),
				slog.String("cart_seller_id", it.SellerID),
				slog.String("seller_id", product.SellerID),
			)
		}

		item, err := entities.NewLineItem(product.ID, product.SellerID, it.Quantity, it.Price)
		if err != nil {
			return nil, &entities.CommitError{Err: err}
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *orderService) commit(ctx context.Context, order entities.Order) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		// Rows are locked in product id order so concurrent carts cannot deadlock.
		for _, it := range reservationOrder(order.Items) {
			if err := s.repo.ReserveStock(ctx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		if err := s.repo.SaveLineItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save line items: %w", err)
		}
		return nil
	})
}

func reservationOrder(items []entities.LineItem) []entities.LineItem {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b entities.LineItem) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return sorted
}

// replayAfterConflict returns the order committed by a concurrent request
// that carried the same idempotency key.
func (s *orderService) replayAfterConflict(ctx context.Context, buyerID, key string) (entities.PlacedOrder, error) {
	existing, err := s.repo.GetOrderByIdempotencyKey(ctx, buyerID, key)
	if err != nil {
		s.logger.Error("failed to load concurrent order", slog.String("buyer_id", buyerID), slog.Any("error", err))
		return entities.PlacedOrder{}, &entities.CommitError{Err: err}
	}
	s.logger.Info("order replayed", slog.String("order_id", existing.ID), slog.String("buyer_id", buyerID))
	return entities.PlacedOrder{Order: existing, Replayed: true}, nil
}

func (s *orderService) recordLedger(ctx context.Context, order entities.Order) {
	t, err := entities.NewPurchaseTransaction(s.newID(), order, s.provider, s.now())
	if err == nil {
		err = s.ledger.AppendTransaction(ctx, t)
	}
	if err != nil {
		ledgerFailures.Inc()
		s.logger.Error("failed to record transaction", slog.String("order_id", order.ID), slog.Any("error", err))
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if order, ok := s.cache.Get(orderID); ok {
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.RetryContext(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cache.Set(orderID, order)
	return order, nil
}

// GetOrderForUser returns the order only to its buyer or to one of its sellers.
func (s *orderService) GetOrderForUser(ctx context.Context, uid, orderID string) (entities.Order, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.Involves(uid) {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

func placeResult(placed entities.PlacedOrder, err error) string {
	var verr *entities.ValidationError
	switch {
	case err == nil && placed.Replayed:
		return "replayed"
	case err == nil:
		return "created"
	case errors.As(err, &verr):
		return "invalid"
	case errors.Is(err, entities.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, entities.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, entities.ErrUnauthorized):
		return "unauthorized"
	default:
		return "failed"
	}
}
