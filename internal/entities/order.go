package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentWallet         PaymentMethod = "wallet"
)

var PaymentMethods = []PaymentMethod{PaymentCard, PaymentCashOnDelivery, PaymentBankTransfer, PaymentWallet}

type ShippingAddress struct {
	Street   string
	City     string
	Postcode string
	Phone    string
}

type LineItem struct {
	ProductID string
	SellerID  string
	Quantity  int
	// Price is captured when the order is placed and never recomputed.
	Price decimal.Decimal
}

func (i LineItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func NewLineItem(productID, sellerID string, quantity int, price decimal.Decimal) (LineItem, error) {
	switch {
	case productID == "":
		return LineItem{}, errors.New("line item: product id is required")
	case sellerID == "":
		return LineItem{}, errors.New("line item: seller id is required")
	case quantity <= 0:
		return LineItem{}, errors.New("line item: quantity must be positive")
	case price.IsNegative():
		return LineItem{}, errors.New("line item: price must not be negative")
	}
	return LineItem{ProductID: productID, SellerID: sellerID, Quantity: quantity, Price: price}, nil
}

type Order struct {
	ID             string
	BuyerID        string
	IdempotencyKey string
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  PaymentMethod
	Shipping       ShippingAddress
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []LineItem
}

// NewOrder builds a processing order whose totals are derived from its items.
func NewOrder(id, buyerID string, items []LineItem, deliveryFee decimal.Decimal, method PaymentMethod, shipping ShippingAddress, now time.Time) (Order, error) {
	switch {
	case id == "":
		return Order{}, errors.New("order: id is required")
	case buyerID == "":
		return Order{}, errors.New("order: buyer id is required")
	case len(items) == 0:
		return Order{}, errors.New("order: at least one line item is required")
	case deliveryFee.IsNegative():
		return Order{}, errors.New("order: delivery fee must not be negative")
	case method == "":
		return Order{}, errors.New("order: payment method is required")
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount())
	}

	return Order{
		ID:            id,
		BuyerID:       buyerID,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         subtotal.Add(deliveryFee),
		PaymentMethod: method,
		Shipping:      shipping,
		Status:        OrderStatusProcessing,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         items,
	}, nil
}

// SellerIDs returns distinct sellers in item order, skipping the buyer.
func (o Order) SellerIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		if it.SellerID == o.BuyerID {
			continue
		}
		if _, ok := seen[it.SellerID]; ok {
			continue
		}
		seen[it.SellerID] = struct{}{}
		ids = append(ids, it.SellerID)
	}
	return ids
}

// SellerShare sums the quantity and amount of the line items sold by sellerID.
func (o Order) SellerShare(sellerID string) (int, decimal.Decimal) {
	qty, amount := 0, decimal.Zero
	for _, it := range o.Items {
		if it.SellerID == sellerID {
			qty += it.Quantity
			amount = amount.Add(it.Amount())
		}
	}
	return qty, amount
}

// Involves reports whether uid is the buyer or one of the sellers of the order.
func (o Order) Involves(uid string) bool {
	if uid == o.BuyerID {
		return true
	}
	for _, it := range o.Items {
		if it.SellerID == uid {
			return true
		}
	}
	return false
}

type CartItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	SellerID  string
}

// OrderRequest is the buyer's checkout payload.
type OrderRequest struct {
	CartItems       []CartItem
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	PaymentMethod   string
	ShippingAddress ShippingAddress
}

// MergedItems sums quantities of repeated products, keeping the first price seen.
func (r OrderRequest) MergedItems() []CartItem {
	idx := make(map[string]int, len(r.CartItems))
	merged := make([]CartItem, 0, len(r.CartItems))
	for _, it := range r.CartItems {
		key := strings.TrimSpace(it.ProductID)
		if i, ok := idx[key]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		it.ProductID = key
		idx[key] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

type PlacedOrder struct {
	Order    Order
	Replayed bool
}
