package handler

import (
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// CartItem is one cart line as sent by the client
type CartItem struct {
	ProductID string          `json:"product_id" example:"7c0e1d2a-product"`
	Quantity  int             `json:"quantity" example:"2"`
	Price     decimal.Decimal `json:"price" swaggertype:"number" example:"10.50"`
	SellerID  string          `json:"seller_id" example:"seller-uid"`
}

// ShippingAddress where the order is delivered
type ShippingAddress struct {
	Street   string `json:"street" example:"1 Main St"`
	City     string `json:"city" example:"Springfield"`
	Postcode string `json:"postcode" example:"12345"`
	Phone    string `json:"phone" example:"+15550100"`
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	CartItems       []CartItem      `json:"cartItems"`
	Subtotal        decimal.Decimal `json:"subtotal" swaggertype:"number" example:"21.00"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee" swaggertype:"number" example:"3.00"`
	Total           decimal.Decimal `json:"total" swaggertype:"number" example:"24.00"`
	PaymentMethod   string          `json:"paymentMethod" example:"card"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
}

// CreateOrderResponse is returned once the order is committed
type CreateOrderResponse struct {
	Success bool   `json:"success" example:"true"`
	OrderID string `json:"orderId" example:"5b1f0c8e-order"`
}

// LineItem is a purchased product with the price frozen at checkout
type LineItem struct {
	ProductID string          `json:"product_id"`
	SellerID  string          `json:"seller_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
}

// Order as seen by its buyer or sellers
type Order struct {
	ID              string          `json:"id"`
	BuyerID         string          `json:"buyer_id"`
	Status          string          `json:"status" example:"processing"`
	PaymentMethod   string          `json:"payment_method" example:"card"`
	Subtotal        decimal.Decimal `json:"subtotal" swaggertype:"number"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee" swaggertype:"number"`
	Total           decimal.Decimal `json:"total_amount" swaggertype:"number"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Items           []LineItem      `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Buyer identity carried by order commands from internal producers
type Buyer struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// OrderCommand is the Kafka message asking to place an order
type OrderCommand struct {
	Buyer Buyer              `json:"buyer"`
	Order CreateOrderRequest `json:"order"`
}

func OrderRequestToEntity(r CreateOrderRequest) entities.OrderRequest {
	items := make([]entities.CartItem, 0, len(r.CartItems))
	for _, it := range r.CartItems {
		items = append(items, entities.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			SellerID:  it.SellerID,
		})
	}
	return entities.OrderRequest{
		CartItems:     items,
		Subtotal:      r.Subtotal,
		DeliveryFee:   r.DeliveryFee,
		Total:         r.Total,
		PaymentMethod: r.PaymentMethod,
		ShippingAddress: entities.ShippingAddress{
			Street:   r.ShippingAddress.Street,
			City:     r.ShippingAddress.City,
			Postcode: r.ShippingAddress.Postcode,
			Phone:    r.ShippingAddress.Phone,
		},
	}
}

func BuyerToEntity(b Buyer) entities.Buyer {
	return entities.Buyer{
		UID:         b.UID,
		Email:       b.Email,
		DisplayName: b.DisplayName,
		PhoneNumber: b.PhoneNumber,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItem{
			ProductID: it.ProductID,
			SellerID:  it.SellerID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return Order{
		ID:            o.ID,
		BuyerID:       o.BuyerID,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		Total:         o.Total,
		ShippingAddress: ShippingAddress{
			Street:   o.Shipping.Street,
			City:     o.Shipping.City,
			Postcode: o.Shipping.Postcode,
			Phone:    o.Shipping.Phone,
		},
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
