package entities_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, product, seller string, qty int, price string) entities.LineItem {
	t.Helper()
	it, err := entities.NewLineItem(product, seller, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return it
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	items := []entities.LineItem{
		mustItem(t, "p-1", "s-1", 2, "10.25"),
		mustItem(t, "p-2", "s-2", 3, "1.10"),
	}

	order, err := entities.NewOrder("o-1", "b-1", items, decimal.RequireFromString("5"), entities.PaymentCard, entities.ShippingAddress{Street: "x"}, now)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("23.80").Equal(order.Subtotal))
	assert.True(t, decimal.RequireFromString("28.80").Equal(order.Total))
	assert.Equal(t, entities.OrderStatusProcessing, order.Status)
	assert.Equal(t, now, order.CreatedAt)

	_, err = entities.NewOrder("o-1", "b-1", nil, decimal.Zero, entities.PaymentCard, entities.ShippingAddress{}, now)
	assert.Error(t, err)
	_, err = entities.NewOrder("", "b-1", items, decimal.Zero, entities.PaymentCard, entities.ShippingAddress{}, now)
	assert.Error(t, err)
}

func TestNewLineItem_FailsFast(t *testing.T) {
	testCases := []struct {
		name     string
		product  string
		seller   string
		quantity int
		price    string
	}{
		{"missing product", "", "s", 1, "1"},
		{"missing seller", "p", "", 1, "1"},
		{"zero quantity", "p", "s", 0, "1"},
		{"negative price", "p", "s", 1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entities.NewLineItem(tc.product, tc.seller, tc.quantity, decimal.RequireFromString(tc.price))
			assert.Error(t, err)
		})
	}
}

func TestOrder_SellerIDs(t *testing.T) {
	order := entities.Order{
		BuyerID: "buyer",
		Items: []entities.LineItem{
			{ProductID: "p-1", SellerID: "s-1"},
			{ProductID: "p-2", SellerID: "buyer"},
			{ProductID: "p-3", SellerID: "s-2"},
			{ProductID: "p-4", SellerID: "s-1"},
		},
	}

	assert.Equal(t, []string{"s-1", "s-2"}, order.SellerIDs())
	assert.True(t, order.Involves("buyer"))
	assert.True(t, order.Involves("s-2"))
	assert.False(t, order.Involves("stranger"))
}

func TestOrderRequest_MergedItems(t *testing.T) {
	req := entities.OrderRequest{CartItems: []entities.CartItem{
		{ProductID: "p-1", Quantity: 1, Price: decimal.NewFromInt(3)},
		{ProductID: "p-2", Quantity: 2, Price: decimal.NewFromInt(4)},
		{ProductID: " p-1", Quantity: 4, Price: decimal.NewFromInt(3)},
	}}

	merged := req.MergedItems()
	require.Len(t, merged, 2)
	assert.Equal(t, "p-1", merged[0].ProductID)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.Equal(t, 2, merged[1].Quantity)
}

func TestErrorsClassify(t *testing.T) {
	stock := fmt.Errorf("reserve: %w", &entities.InsufficientStockError{ProductID: "p", Requested: 2, Available: 1})
	assert.ErrorIs(t, stock, entities.ErrInsufficientStock)

	var se *entities.InsufficientStockError
	require.ErrorAs(t, stock, &se)
	assert.Equal(t, 1, se.Available)

	assert.ErrorIs(t, &entities.ProductNotFoundError{ProductID: "p"}, entities.ErrProductNotFound)

	cause := errors.New("connection reset")
	commit := &entities.CommitError{Err: cause}
	assert.ErrorIs(t, commit, entities.ErrCommitFailed)
	assert.ErrorIs(t, commit, cause)
}

func TestOrder_SellerShare(t *testing.T) {
	order := entities.Order{Items: []entities.LineItem{
		mustItem(t, "p-1", "s-1", 2, "3.50"),
		mustItem(t, "p-2", "s-2", 1, "10"),
		mustItem(t, "p-3", "s-1", 1, "1.00"),
	}}

	qty, amount := order.SellerShare("s-1")
	assert.Equal(t, 3, qty)
	assert.True(t, decimal.RequireFromString("8").Equal(amount))

	qty, amount = order.SellerShare("nobody")
	assert.Zero(t, qty)
	assert.True(t, amount.IsZero())
}

func TestOrder_Involves(t *testing.T) {
	order := entities.Order{BuyerID: "b-1", Items: []entities.LineItem{
		mustItem(t, "p-1", "s-1", 1, "1"),
		mustItem(t, "p-2", "s-2", 1, "1"),
	}}

	for uid, want := range map[string]bool{"b-1": true, "s-1": true, "s-2": true, "s-3": false, "": false} {
		assert.Equal(t, want, order.Involves(uid), uid)
	}
}
