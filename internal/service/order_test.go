package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-order-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
	txMocks "github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)
	buyer = entities.Buyer{UID: "buyer-1", Email: "bob@example.com", DisplayName: "Bob"}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validRequest() entities.OrderRequest {
	return entities.OrderRequest{
		CartItems: []entities.CartItem{
			{ProductID: "p-1", SellerID: "seller-1", Quantity: 2, Price: dec("10.00")},
			{ProductID: "p-2", SellerID: "seller-2", Quantity: 1, Price: dec("4.50")},
		},
		Subtotal:        dec("24.50"),
		DeliveryFee:     dec("3.00"),
		Total:           dec("27.50"),
		PaymentMethod:   "card",
		ShippingAddress: entities.ShippingAddress{Street: "1 Main St", City: "Springfield", Postcode: "12345", Phone: "+15550100"},
	}
}

func product(id, seller string, available int) entities.Product {
	return entities.Product{ID: id, SellerID: seller, Title: id, Price: dec("99"), AvailableQuantity: available}
}

type deps struct {
	repo      *mocks.MockOrderRepo
	ledger    *mocks.MockLedger
	notifier  *mocks.MockNotifier
	cache     *mocks.MockCache
	validator *mocks.MockValidator
	tx        *txMocks.MockManager
}

func newDeps(t *testing.T) deps {
	return deps{
		repo:      mocks.NewMockOrderRepo(t),
		ledger:    mocks.NewMockLedger(t),
		notifier:  mocks.NewMockNotifier(t),
		cache:     mocks.NewMockCache(t),
		validator: mocks.NewMockValidator(t),
		tx:        txMocks.NewMockManager(t),
	}
}

func (d deps) service() interface {
	PlaceOrder(ctx context.Context, buyer entities.Buyer, req entities.OrderRequest, idempotencyKey string) (entities.PlacedOrder, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderForUser(ctx context.Context, uid, orderID string) (entities.Order, error)
} {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.tx, d.repo, d.ledger, d.notifier, d.cache, d.validator, "mock",
		service.WithClock(func() time.Time { return now }),
		service.WithIDGenerator(func() string { return "order-1" }),
		service.WithRetryConfig(utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}),
	)
}

func passThroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

func TestOrderService_PlaceOrder(t *testing.T) {
	type MockBehavior func(d deps)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		key          string
		mockBehavior MockBehavior
		wantErr      error
		wantReplayed bool
	}{
		{
			name: "OK",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-1").Return(product("p-1", "seller-1", 5), nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-2").Return(product("p-2", "seller-2", 1), nil)
				passThroughTx(d.tx)
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				d.repo.EXPECT().ReserveStock(mock.Anything, "p-1", 2).Return(nil)
				d.repo.EXPECT().ReserveStock(mock.Anything, "p-2", 1).Return(nil)
				d.repo.EXPECT().SaveLineItems(mock.Anything, "order-1", mock.Anything).Return(nil)
				d.ledger.EXPECT().AppendTransaction(mock.Anything, mock.Anything).Return(nil)
				d.notifier.EXPECT().OrderPlaced(mock.Anything, mock.Anything, buyer).Return()
				d.cache.EXPECT().Set("order-1", mock.Anything).Return()
			},
		},
		{
			name: "validation error stops before any read",
			mockBehavior: func(d deps) {
				verr := entities.NewValidationError()
				verr.Add("cartItems[0].quantity", "must be greater than 0")
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(verr)
			},
			wantErr: &entities.ValidationError{},
		},
		{
			name: "pre-flight product not found",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-1").
					Return(entities.Product{}, &entities.ProductNotFoundError{ProductID: "p-1"})
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "pre-flight insufficient stock",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-1").Return(product("p-1", "seller-1", 5), nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-2").Return(product("p-2", "seller-2", 0), nil)
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "stock lost at commit",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetProduct(mock.Anything, mock.Anything).Return(product("p-1", "seller-1", 5), nil).Once()
				d.repo.EXPECT().GetProduct(mock.Anything, mock.Anything).Return(product("p-2", "seller-2", 1), nil).Once()
				passThroughTx(d.tx)
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				d.repo.EXPECT().ReserveStock(mock.Anything, "p-1", 2).Return(nil)
				d.repo.EXPECT().ReserveStock(mock.Anything, "p-2", 1).
					Return(&entities.InsufficientStockError{ProductID: "p-2", Requested: 1, Available: 0})
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "commit failure is wrapped",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-1").Return(product("p-1", "seller-1", 5), nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-2").Return(product("p-2", "seller-2", 1), nil)
				passThroughTx(d.tx)
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: entities.ErrCommitFailed,
		},
		{
			name: "ledger failure does not fail the order",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-1").Return(product("p-1", "seller-1", 5), nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-2").Return(product("p-2", "seller-2", 1), nil)
				passThroughTx(d.tx)
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
				d.repo.EXPECT().ReserveStock(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				d.repo.EXPECT().SaveLineItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				d.ledger.EXPECT().AppendTransaction(mock.Anything, mock.Anything).Return(dbError)
				d.notifier.EXPECT().OrderPlaced(mock.Anything, mock.Anything, mock.Anything).Return()
				d.cache.EXPECT().Set(mock.Anything, mock.Anything).Return()
			},
		},
		{
			name: "known idempotency key is replayed",
			key:  "key-1",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "buyer-1", "key-1").
					Return(entities.Order{ID: "order-0", BuyerID: "buyer-1"}, nil)
			},
			wantReplayed: true,
		},
		{
			name: "concurrent duplicate is replayed",
			key:  "key-1",
			mockBehavior: func(d deps) {
				d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
				d.repo.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "buyer-1", "key-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				d.repo.EXPECT().GetProduct(mock.Anything, "p-1").Return(product("p-1", "seller-1", 5), nil)
				d.repo.EXPECT().GetProduct(mock.Anything, "p-2").Return(product("p-2", "seller-2", 1), nil)
				passThroughTx(d.tx)
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.ErrDuplicateRequest)
				d.repo.EXPECT().GetOrderByIdempotencyKey(mock.Anything, "buyer-1", "key-1").
					Return(entities.Order{ID: "order-0", BuyerID: "buyer-1"}, nil).Once()
			},
			wantReplayed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			placed, err := d.service().PlaceOrder(context.Background(), buyer, validRequest(), tc.key)

			if tc.wantErr != nil {
				var verr *entities.ValidationError
				if errors.As(tc.wantErr, &verr) {
					assert.ErrorAs(t, err, &verr)
				} else {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantReplayed, placed.Replayed)
			if !tc.wantReplayed {
				assert.Equal(t, "order-1", placed.Order.ID)
				assert.True(t, dec("27.50").Equal(placed.Order.Total))
			}
		})
	}
}

func TestOrderService_PlaceOrder_LineItems(t *testing.T) {
	d := newDeps(t)
	req := validRequest()
	req.CartItems[0].SellerID = "stale-seller"
	req.CartItems = append(req.CartItems, entities.CartItem{ProductID: "p-1", SellerID: "someone-else", Quantity: 1, Price: dec("10.00")})

	d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
	d.repo.EXPECT().GetProduct(mock.Anything, "p-1").Return(product("p-1", "seller-1", 3), nil)
	d.repo.EXPECT().GetProduct(mock.Anything, "p-2").Return(product("p-2", "seller-2", 1), nil)
	passThroughTx(d.tx)
	d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)
	d.repo.EXPECT().ReserveStock(mock.Anything, "p-1", 3).Return(nil).Once()
	d.repo.EXPECT().ReserveStock(mock.Anything, "p-2", 1).Return(nil).Once()

	var saved []entities.LineItem
	d.repo.EXPECT().SaveLineItems(mock.Anything, "order-1", mock.Anything).
		Run(func(_ context.Context, _ string, items []entities.LineItem) { saved = items }).
		Return(nil)

	var recorded entities.Transaction
	d.ledger.EXPECT().AppendTransaction(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tr entities.Transaction) { recorded = tr }).
		Return(nil)
	d.notifier.EXPECT().OrderPlaced(mock.Anything, mock.Anything, buyer).Return()
	d.cache.EXPECT().Set("order-1", mock.Anything).Return()

	placed, err := d.service().PlaceOrder(context.Background(), buyer, req, "")
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, entities.LineItem{ProductID: "p-1", SellerID: "seller-1", Quantity: 3, Price: dec("10.00")}, saved[0])
	assert.Equal(t, "seller-2", saved[1].SellerID)

	assert.Equal(t, entities.TransactionTypePurchase, recorded.Type)
	assert.Equal(t, entities.TransactionStatusCompleted, recorded.Status)
	assert.Equal(t, "buyer-1", recorded.ProfileID)
	assert.Equal(t, "mock", recorded.Provider)
	assert.True(t, placed.Order.Total.Equal(recorded.Amount))
	assert.Equal(t, now, placed.Order.CreatedAt)
}

func TestOrderService_PlaceOrder_ReservesInProductOrder(t *testing.T) {
	d := newDeps(t)
	req := validRequest()
	req.CartItems[0], req.CartItems[1] = req.CartItems[1], req.CartItems[0]

	d.validator.EXPECT().OrderRequest(mock.Anything).Return(nil)
	d.repo.EXPECT().GetProduct(mock.Anything, "p-1").Return(product("p-1", "seller-1", 5), nil)
	d.repo.EXPECT().GetProduct(mock.Anything, "p-2").Return(product("p-2", "seller-2", 5), nil)
	passThroughTx(d.tx)
	d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil)

	var reserved []string
	d.repo.EXPECT().ReserveStock(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, productID string, _ int) { reserved = append(reserved, productID) }).
		Return(nil).Twice()

	var saved []entities.LineItem
	d.repo.EXPECT().SaveLineItems(mock.Anything, "order-1", mock.Anything).
		Run(func(_ context.Context, _ string, items []entities.LineItem) { saved = items }).
		Return(nil)
	d.ledger.EXPECT().AppendTransaction(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().OrderPlaced(mock.Anything, mock.Anything, buyer).Return()
	d.cache.EXPECT().Set("order-1", mock.Anything).Return()

	_, err := d.service().PlaceOrder(context.Background(), buyer, req, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"p-1", "p-2"}, reserved)
	require.Len(t, saved, 2)
	assert.Equal(t, "p-2", saved[0].ProductID, "line items keep cart order")
}

func TestOrderService_PlaceOrder_RequiresBuyer(t *testing.T) {
	d := newDeps(t)

	_, err := d.service().PlaceOrder(context.Background(), entities.Buyer{}, validRequest(), "")

	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "123", BuyerID: "buyer-1"}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(validOrder, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(entities.Order{}, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validOrder).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo is not retried",
			orderID: "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("not-exist").Return(entities.Order{}, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("123").Return(entities.Order{}, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("123", validOrder).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d.repo, d.cache)

			got, err := d.service().GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_GetOrderForUser(t *testing.T) {
	order := entities.Order{
		ID:      "123",
		BuyerID: "buyer-1",
		Items:   []entities.LineItem{{ProductID: "p-1", SellerID: "seller-1", Quantity: 1, Price: dec("1")}},
	}

	testCases := []struct {
		name    string
		uid     string
		wantErr error
	}{
		{name: "buyer", uid: "buyer-1"},
		{name: "seller", uid: "seller-1"},
		{name: "stranger", uid: "someone", wantErr: entities.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			d.cache.EXPECT().Get("123").Return(order, true)

			got, err := d.service().GetOrderForUser(context.Background(), tc.uid, "123")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}
