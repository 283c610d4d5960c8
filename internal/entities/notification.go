package entities

import (
	"encoding/json"
	"errors"
	"time"
)

const NotificationTypeOrder = "order"

type Notification struct {
	ID        string
	UserID    string
	Type      string
	Title     string
	Message   string
	LinkURL   string
	Read      bool
	CreatedAt time.Time
}

func NewNotification(id, userID, typ, title, message, link string, now time.Time) (Notification, error) {
	switch {
	case id == "":
		return Notification{}, errors.New("notification: id is required")
	case userID == "":
		return Notification{}, errors.New("notification: recipient is required")
	case typ == "" || title == "":
		return Notification{}, errors.New("notification: type and title are required")
	}
	return Notification{
		ID:        id,
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		LinkURL:   link,
		CreatedAt: now,
	}, nil
}

type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type SMS struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
)

// Delivery is a queued email or SMS waiting for the relay.
type Delivery struct {
	ID        string
	Channel   Channel
	Recipient string
	Payload   json.RawMessage
	Status    string
	Attempts  int
	CreatedAt time.Time
}
