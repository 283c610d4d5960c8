package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Product is owned by the listings subsystem; only AvailableQuantity is mutated here.
type Product struct {
	ID                string
	SellerID          string
	Title             string
	Price             decimal.Decimal
	AvailableQuantity int
	Version           int64
	UpdatedAt         time.Time
}

func NewProduct(id, sellerID, title string, price decimal.Decimal, available int) (Product, error) {
	switch {
	case id == "":
		return Product{}, errors.New("product: id is required")
	case sellerID == "":
		return Product{}, errors.New("product: seller id is required")
	case available < 0:
		return Product{}, errors.New("product: available quantity is negative")
	}
	return Product{ID: id, SellerID: sellerID, Title: title, Price: price, AvailableQuantity: available}, nil
}

// Buyer is the identity resolved from a verified session.
type Buyer struct {
	UID         string
	Email       string
	DisplayName string
	PhoneNumber string
}

// Profile holds the contact details used for seller notifications.
type Profile struct {
	ID          string
	DisplayName string
	Email       string
	Phone       string
}
