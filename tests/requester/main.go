package main

import (
	"bytes"
	"flag"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
)

// Fires concurrent checkouts for the same product to show that stock is never
// oversold: with stock N exactly N requests succeed.
const body = `{
	"cartItems": [{"product_id": "%s", "quantity": 1, "price": %s, "seller_id": "%s"}],
	"subtotal": %[2]s, "deliveryFee": 0, "total": %[2]s,
	"paymentMethod": "card",
	"shippingAddress": {"street": "1 Main St", "city": "Springfield", "postcode": "12345", "phone": "+15550100"}
}`

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080/orders", "order endpoint")
		token     = flag.String("token", "", "Firebase ID token")
		productID = flag.String("product", "11111111-1111-1111-1111-111111111111", "product id")
		sellerID  = flag.String("seller", "seller-1", "seller id")
		price     = flag.String("price", "12.50", "unit price")
		buyers    = flag.Int("n", 20, "concurrent checkouts")
	)
	flag.Parse()

	payload := fmt.Sprintf(body, *productID, *price, *sellerID)

	var (
		wg                   sync.WaitGroup
		created, rejected, f atomic.Int32
	)
	for range *buyers {
		wg.Go(func() {
			status, err := doRequest(*baseURL, *token, payload)
			switch {
			case err != nil:
				f.Add(1)
				fmt.Println("request failed:", err)
			case status == http.StatusCreated:
				created.Add(1)
			case status == http.StatusBadRequest:
				rejected.Add(1)
			default:
				f.Add(1)
				fmt.Println("unexpected status:", status)
			}
		})
	}
	wg.Wait()

	fmt.Printf("created=%d rejected=%d failed=%d\n", created.Load(), rejected.Load(), f.Load())
}

func doRequest(url, token, payload string) (int, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
