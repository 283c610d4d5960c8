package validation

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// MaxQuantity bounds a single cart line.
	MaxQuantity = 10000
	moneyScale  = 2
)

// maxAmount is the first value that no longer fits NUMERIC(12, 2).
var maxAmount = decimal.New(1, 10)

type Validator struct {
	validate       *validator.Validate
	paymentMethods string
}

func New() *Validator {
	methods := make([]string, 0, len(entities.PaymentMethods))
	for _, m := range entities.PaymentMethods {
		methods = append(methods, string(m))
	}
	return &Validator{
		validate:       validator.New(),
		paymentMethods: strings.Join(methods, " "),
	}
}

// OrderRequest checks every field of req and returns a *entities.ValidationError
// listing all failures, or nil.
func (v *Validator) OrderRequest(req entities.OrderRequest) error {
	verr := entities.NewValidationError()

	if len(req.CartItems) == 0 {
		verr.Add("cartItems", "must contain at least one item")
	}

	computed := decimal.Zero
	prices := make(map[string]decimal.Decimal, len(req.CartItems))
	for i, it := range req.CartItems {
		prefix := fmt.Sprintf("cartItems[%d]", i)
		productID := strings.TrimSpace(it.ProductID)
		v.check(verr, prefix+".product_id", productID, "required")
		v.check(verr, prefix+".seller_id", strings.TrimSpace(it.SellerID), "required")
		v.check(verr, prefix+".quantity", it.Quantity, fmt.Sprintf("gt=0,lte=%d", MaxQuantity))
		checkAmount(verr, prefix+".price", it.Price)

		// Repeated lines are merged into one, which can only carry one price.
		if first, ok := prices[productID]; ok && !first.Equal(it.Price) {
			verr.Add(prefix+".price", "differs from an earlier line for the same product")
		} else if !ok && productID != "" {
			prices[productID] = it.Price
		}
		computed = computed.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	money := []struct {
		field string
		value decimal.Decimal
	}{
		{"subtotal", req.Subtotal},
		{"deliveryFee", req.DeliveryFee},
		{"total", req.Total},
	}
	for _, m := range money {
		checkAmount(verr, m.field, m.value)
	}

	v.check(verr, "paymentMethod", req.PaymentMethod, "required,oneof="+v.paymentMethods)

	addr := req.ShippingAddress
	v.check(verr, "shippingAddress.street", strings.TrimSpace(addr.Street), "required")
	v.check(verr, "shippingAddress.city", strings.TrimSpace(addr.City), "required")
	v.check(verr, "shippingAddress.postcode", strings.TrimSpace(addr.Postcode), "required")
	v.check(verr, "shippingAddress.phone", strings.TrimSpace(addr.Phone), "required")

	// Totals are only comparable once every line is well formed.
	if verr.Empty() {
		if !req.Subtotal.Equal(computed) {
			verr.Add("subtotal", fmt.Sprintf("does not match cart items (expected %s)", computed.StringFixed(2)))
		}
		expectedTotal := req.Subtotal.Add(req.DeliveryFee)
		if !req.Total.Equal(expectedTotal) {
			verr.Add("total", fmt.Sprintf("must equal subtotal plus delivery fee (expected %s)", expectedTotal.StringFixed(2)))
		}
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

// checkAmount enforces what the NUMERIC(12, 2) money columns can store exactly.
func checkAmount(verr *entities.ValidationError, field string, d decimal.Decimal) {
	switch {
	case d.IsNegative():
		verr.Add(field, "must be non-negative")
	case !d.Equal(d.Truncate(moneyScale)):
		verr.Add(field, "must have at most 2 decimal places")
	case d.GreaterThanOrEqual(maxAmount):
		verr.Add(field, "must be less than "+maxAmount.String())
	}
}

func (v *Validator) check(verr *entities.ValidationError, field string, value any, tag string) {
	err := v.validate.Var(value, tag)
	if err == nil {
		return
	}
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		verr.Add(field, message(ve[0]))
		return
	}
	verr.Add(field, err.Error())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}
