package notify

import (
	"bytes"
	"html/template"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

var buyerEmail = template.Must(template.New("buyer").Parse(`<h2>Thanks for your order, {{.Name}}!</h2>
<p>Order <strong>#{{.OrderID}}</strong> is being processed.</p>
<table>
  <tr><th>Product</th><th>Qty</th><th>Price</th></tr>
  {{range .Items}}<tr><td>{{.ProductID}}</td><td>{{.Quantity}}</td><td>{{.Price.StringFixed 2}}</td></tr>
  {{end}}
</table>
<p>Subtotal: {{.Order.Subtotal.StringFixed 2}}<br>Delivery: {{.Order.DeliveryFee.StringFixed 2}}<br><strong>Total: {{.Order.Total.StringFixed 2}}</strong></p>
<p>Shipping to {{.Order.Shipping.Street}}, {{.Order.Shipping.City}} {{.Order.Shipping.Postcode}}</p>`))

var sellerEmail = template.Must(template.New("seller").Parse(`<h2>You made a sale, {{.Name}}!</h2>
<p>Order <strong>#{{.OrderID}}</strong> contains {{.Quantity}} of your item(s) worth {{.Amount.StringFixed 2}}.</p>
<table>
  <tr><th>Product</th><th>Qty</th><th>Price</th></tr>
  {{range .Items}}<tr><td>{{.ProductID}}</td><td>{{.Quantity}}</td><td>{{.Price.StringFixed 2}}</td></tr>
  {{end}}
</table>
<p>Ship to {{.Order.Shipping.Street}}, {{.Order.Shipping.City}} {{.Order.Shipping.Postcode}} ({{.Order.Shipping.Phone}})</p>`))

type emailData struct {
	Name     string
	OrderID  string
	Order    entities.Order
	Items    []entities.LineItem
	Quantity int
	Amount   decimal.Decimal
}

func renderBuyerEmail(order entities.Order, buyer entities.Buyer) (string, error) {
	name := buyer.DisplayName
	if name == "" {
		name = "there"
	}
	return render(buyerEmail, emailData{
		Name:    name,
		OrderID: shortID(order.ID),
		Order:   order,
		Items:   order.Items,
	})
}

func renderSellerEmail(order entities.Order, seller entities.Profile, qty int, amount decimal.Decimal) (string, error) {
	items := make([]entities.LineItem, 0, len(order.Items))
	for _, it := range order.Items {
		if it.SellerID == seller.ID {
			items = append(items, it)
		}
	}
	name := seller.DisplayName
	if name == "" {
		name = "there"
	}
	return render(sellerEmail, emailData{
		Name:     name,
		OrderID:  shortID(order.ID),
		Order:    order,
		Items:    items,
		Quantity: qty,
		Amount:   amount,
	})
}

func render(t *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
