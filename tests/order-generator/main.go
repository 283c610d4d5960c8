package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type CartItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	SellerID  string  `json:"seller_id"`
}

type ShippingAddress struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Phone    string `json:"phone"`
}

type Order struct {
	CartItems       []CartItem      `json:"cartItems"`
	Subtotal        float64         `json:"subtotal"`
	DeliveryFee     float64         `json:"deliveryFee"`
	Total           float64         `json:"total"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}

type Buyer struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

type OrderCommand struct {
	Buyer Buyer `json:"buyer"`
	Order Order `json:"order"`
}

// products must match rows seeded in the products table.
var products = []CartItem{
	{ProductID: "11111111-1111-1111-1111-111111111111", SellerID: "seller-1", Price: 12.50},
	{ProductID: "22222222-2222-2222-2222-222222222222", SellerID: "seller-2", Price: 4.99},
	{ProductID: "33333333-3333-3333-3333-333333333333", SellerID: "seller-1", Price: 100},
}

var methods = []string{"card", "wallet", "cash_on_delivery", "bank_transfer"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomCommand() OrderCommand {
	var (
		items    []CartItem
		subtotal float64
	)
	for _, p := range products {
		if rand.Intn(2) == 0 {
			continue
		}
		p.Quantity = rand.Intn(3) + 1
		subtotal += p.Price * float64(p.Quantity)
		items = append(items, p)
	}
	if len(items) == 0 {
		p := products[0]
		p.Quantity = 1
		subtotal = p.Price
		items = append(items, p)
	}

	subtotal = math.Round(subtotal*100) / 100
	fee := 3.0
	buyer := fmt.Sprintf("buyer-%d", rand.Intn(50))
	return OrderCommand{
		Buyer: Buyer{UID: buyer, Email: buyer + "@example.com"},
		Order: Order{
			CartItems:     items,
			Subtotal:      subtotal,
			DeliveryFee:   fee,
			Total:         subtotal + fee,
			PaymentMethod: methods[rand.Intn(len(methods))],
			ShippingAddress: ShippingAddress{
				Street:   fmt.Sprintf("Street %d", rand.Intn(100)),
				City:     "City" + randomString(4),
				Postcode: fmt.Sprintf("%05d", rand.Intn(99999)),
				Phone:    fmt.Sprintf("+1555%07d", rand.Intn(9999999)),
			},
		},
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP("localhost:9092"),
		Topic:                  "order-commands",
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cmd := generateRandomCommand()
			data, _ := json.Marshal(cmd)
			key := randomString(16)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data}); err != nil {
				log.Println("failed to write command:", err)
				continue
			}
			// resend some commands under the same key to exercise replay
			if rand.Intn(5) == 0 {
				writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data})
			}
			log.Println("order command sent", key, cmd.Buyer.UID)
		case <-ctx.Done():
			return
		}
	}
}
