package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID                string          `db:"id"`
	SellerID          string          `db:"seller_id"`
	Title             string          `db:"title"`
	Price             decimal.Decimal `db:"price"`
	AvailableQuantity int             `db:"available_quantity"`
	Version           int64           `db:"version"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

type Order struct {
	ID             string          `db:"id"`
	BuyerID        string          `db:"buyer_id"`
	IdempotencyKey sql.NullString  `db:"idempotency_key"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	DeliveryFee    decimal.Decimal `db:"delivery_fee"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaymentMethod  string          `db:"payment_method"`
	Street         string          `db:"street"`
	City           string          `db:"city"`
	Postcode       string          `db:"postcode"`
	Phone          string          `db:"phone"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type Item struct {
	OrderID   string          `db:"order_id"`
	ProductID string          `db:"product_id"`
	SellerID  string          `db:"seller_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type Profile struct {
	ID          string         `db:"id"`
	DisplayName string         `db:"display_name"`
	Email       sql.NullString `db:"email"`
	Phone       sql.NullString `db:"phone"`
}

var orderColumns = []string{
	"id", "buyer_id", "idempotency_key", "subtotal", "delivery_fee", "total_amount",
	"payment_method", "street", "city", "postcode", "phone", "status", "created_at", "updated_at",
}

var itemColumns = []string{"order_id", "product_id", "seller_id", "quantity", "price"}

func ProductToEntity(p Product) (entities.Product, error) {
	product, err := entities.NewProduct(p.ID, p.SellerID, p.Title, p.Price, p.AvailableQuantity)
	if err != nil {
		return entities.Product{}, err
	}
	product.Version = p.Version
	product.UpdatedAt = p.UpdatedAt
	return product, nil
}

func ItemToEntity(i Item) (entities.LineItem, error) {
	return entities.NewLineItem(i.ProductID, i.SellerID, i.Quantity, i.Price)
}

func OrderToEntity(o Order, items []Item) (entities.Order, error) {
	if o.ID == "" || o.BuyerID == "" {
		return entities.Order{}, errors.New("order row without id or buyer")
	}
	if len(items) == 0 {
		return entities.Order{}, fmt.Errorf("order %s has no line items", o.ID)
	}

	order := entities.Order{
		ID:             o.ID,
		BuyerID:        o.BuyerID,
		IdempotencyKey: nullStringToString(o.IdempotencyKey),
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		Total:          o.TotalAmount,
		PaymentMethod:  entities.PaymentMethod(o.PaymentMethod),
		Shipping: entities.ShippingAddress{
			Street:   o.Street,
			City:     o.City,
			Postcode: o.Postcode,
			Phone:    o.Phone,
		},
		Status:    entities.OrderStatus(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		Items:     make([]entities.LineItem, 0, len(items)),
	}

	for _, it := range items {
		item, err := ItemToEntity(it)
		if err != nil {
			return entities.Order{}, fmt.Errorf("order %s: %w", o.ID, err)
		}
		order.Items = append(order.Items, item)
	}

	return order, nil
}

func ProfileToEntity(p Profile) entities.Profile {
	return entities.Profile{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Email:       nullStringToString(p.Email),
		Phone:       nullStringToString(p.Phone),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
