package validation_test

import (
	"testing"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() entities.OrderRequest {
	return entities.OrderRequest{
		CartItems: []entities.CartItem{
			{ProductID: "p-1", Quantity: 2, Price: decimal.RequireFromString("10.50"), SellerID: "seller-1"},
			{ProductID: "p-2", Quantity: 1, Price: decimal.RequireFromString("4.00"), SellerID: "seller-2"},
		},
		Subtotal:      decimal.RequireFromString("25.00"),
		DeliveryFee:   decimal.RequireFromString("3.50"),
		Total:         decimal.RequireFromString("28.50"),
		PaymentMethod: "card",
		ShippingAddress: entities.ShippingAddress{
			Street:   "1 Main St",
			City:     "Springfield",
			Postcode: "12345",
			Phone:    "+15550001111",
		},
	}
}

func TestValidator_OrderRequest(t *testing.T) {
	testCases := []struct {
		name       string
		modify     func(r *entities.OrderRequest)
		wantFields []string
	}{
		{
			name:   "valid",
			modify: func(r *entities.OrderRequest) {},
		},
		{
			name:       "empty cart",
			modify:     func(r *entities.OrderRequest) { r.CartItems = nil },
			wantFields: []string{"cartItems"},
		},
		{
			name: "zero quantity and missing street reported together",
			modify: func(r *entities.OrderRequest) {
				r.CartItems[0].Quantity = 0
				r.ShippingAddress.Street = ""
			},
			wantFields: []string{"cartItems[0].quantity", "shippingAddress.street"},
		},
		{
			name: "negative money",
			modify: func(r *entities.OrderRequest) {
				r.CartItems[1].Price = decimal.RequireFromString("-1")
				r.DeliveryFee = decimal.RequireFromString("-2")
			},
			wantFields: []string{"cartItems[1].price", "deliveryFee"},
		},
		{
			name: "blank identifiers",
			modify: func(r *entities.OrderRequest) {
				r.CartItems[0].ProductID = "  "
				r.CartItems[1].SellerID = ""
			},
			wantFields: []string{"cartItems[0].product_id", "cartItems[1].seller_id"},
		},
		{
			name:       "unknown payment method",
			modify:     func(r *entities.OrderRequest) { r.PaymentMethod = "crypto" },
			wantFields: []string{"paymentMethod"},
		},
		{
			name: "whole address missing",
			modify: func(r *entities.OrderRequest) {
				r.ShippingAddress = entities.ShippingAddress{}
			},
			wantFields: []string{
				"shippingAddress.street", "shippingAddress.city",
				"shippingAddress.postcode", "shippingAddress.phone",
			},
		},
		{
			name: "same product at two prices",
			modify: func(r *entities.OrderRequest) {
				r.CartItems = append(r.CartItems, entities.CartItem{
					ProductID: "p-1", Quantity: 1, Price: decimal.RequireFromString("12.00"), SellerID: "seller-1",
				})
				r.Subtotal = decimal.RequireFromString("37.00")
				r.Total = decimal.RequireFromString("40.50")
			},
			wantFields: []string{"cartItems[2].price"},
		},
		{
			name: "same product at the same price",
			modify: func(r *entities.OrderRequest) {
				r.CartItems = append(r.CartItems, entities.CartItem{
					ProductID: "p-1", Quantity: 1, Price: decimal.RequireFromString("10.5"), SellerID: "seller-1",
				})
				r.Subtotal = decimal.RequireFromString("35.50")
				r.Total = decimal.RequireFromString("39.00")
			},
		},
		{
			name: "sub-cent amounts",
			modify: func(r *entities.OrderRequest) {
				r.CartItems = []entities.CartItem{
					{ProductID: "p-1", Quantity: 2, Price: decimal.RequireFromString("0.005"), SellerID: "seller-1"},
				}
				r.Subtotal = decimal.RequireFromString("0.01")
				r.DeliveryFee = decimal.RequireFromString("0.001")
				r.Total = decimal.RequireFromString("0.011")
			},
			wantFields: []string{"cartItems[0].price", "deliveryFee", "total"},
		},
		{
			name: "trailing zeros are fine",
			modify: func(r *entities.OrderRequest) {
				r.CartItems[0].Price = decimal.RequireFromString("10.5000")
			},
		},
		{
			name: "amounts too large for storage",
			modify: func(r *entities.OrderRequest) {
				r.CartItems = []entities.CartItem{
					{ProductID: "p-1", Quantity: 1, Price: decimal.RequireFromString("10000000000"), SellerID: "seller-1"},
				}
				r.Subtotal = decimal.RequireFromString("10000000000")
				r.Total = decimal.RequireFromString("10000000003.50")
			},
			wantFields: []string{"cartItems[0].price", "subtotal", "total"},
		},
		{
			name:       "quantity above the cap",
			modify:     func(r *entities.OrderRequest) { r.CartItems[1].Quantity = validation.MaxQuantity + 1 },
			wantFields: []string{"cartItems[1].quantity"},
		},
		{
			name:       "subtotal mismatch",
			modify:     func(r *entities.OrderRequest) { r.Subtotal = decimal.RequireFromString("20.00"); r.Total = decimal.RequireFromString("23.50") },
			wantFields: []string{"subtotal"},
		},
		{
			name:       "total mismatch",
			modify:     func(r *entities.OrderRequest) { r.Total = decimal.RequireFromString("30") },
			wantFields: []string{"total"},
		},
	}

	v := validation.New()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.modify(&req)

			err := v.OrderRequest(req)
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *entities.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Fields, len(tc.wantFields))
			for _, f := range tc.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}
