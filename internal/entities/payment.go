package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypePurchase    = "purchase"
	TransactionStatusCompleted = "completed"
)

// Transaction is an append-only ledger record of a monetary event.
type Transaction struct {
	ID        string
	OrderID   string
	ProfileID string
	Type      string
	Amount    decimal.Decimal
	Status    string
	Provider  string
	CreatedAt time.Time
}

func NewPurchaseTransaction(id string, order Order, provider string, now time.Time) (Transaction, error) {
	switch {
	case id == "":
		return Transaction{}, errors.New("transaction: id is required")
	case order.ID == "" || order.BuyerID == "":
		return Transaction{}, errors.New("transaction: order must be persisted")
	case provider == "":
		return Transaction{}, errors.New("transaction: provider is required")
	}
	return Transaction{
		ID:        id,
		OrderID:   order.ID,
		ProfileID: order.BuyerID,
		Type:      TransactionTypePurchase,
		Amount:    order.Total,
		Status:    TransactionStatusCompleted,
		Provider:  provider,
		CreatedAt: now,
	}, nil
}
