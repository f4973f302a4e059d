// Package checkout computes order totals and places mock orders. All money
// math uses decimals; floats only cross the boundary at the cart lines.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"shopfront/cart"
	"shopfront/domain"
	"shopfront/util"
)

// ErrEmptyCart is returned when placing an order over an empty ledger.
var ErrEmptyCart = errors.New("cart is empty")

// Thresholds and rates from the storefront's pricing rules.
var (
	freeShippingOver = decimal.NewFromInt(1000)
	shippingFlat     = decimal.NewFromInt(99)
	taxRate          = decimal.NewFromFloat(0.18) // GST
)

// promoCodes maps accepted codes to their percentage discount.
var promoCodes = map[string]int64{
	"SAVE10":    10,
	"WELCOME20": 20,
	"FIRST15":   15,
	"SUMMER25":  25,
}

// Delivery estimates, tighter when shipping is free.
const (
	fastDeliveryDays     = 2
	standardDeliveryDays = 5
)

// Quote is the priced breakdown of a cart.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Order is a completed checkout.
type Order struct {
	Number            string            `json:"number"`
	TrackingNumber    string            `json:"trackingNumber"`
	EstimatedDelivery time.Time         `json:"estimatedDelivery"`
	Items             []domain.CartLine `json:"items"`
	Address           Address           `json:"address"`
	Quote             Quote             `json:"quote"`
	PlacedAt          time.Time         `json:"placedAt"`
}

// PromoDiscount resolves a promo code to its percentage. The empty code is
// a valid zero discount.
func PromoDiscount(code string) (int64, error) {
	if code == "" {
		return 0, nil
	}
	pct, ok := promoCodes[code]
	if !ok {
		return 0, NewInvalidPromoError(code)
	}
	return pct, nil
}

// NewQuote prices the given lines: subtotal, flat-rate shipping waived over
// the free-shipping threshold, tax, and promo discount. Amounts round to
// two places.
func NewQuote(lines []domain.CartLine, promoCode string) (Quote, error) {
	pct, err := PromoDiscount(promoCode)
	if err != nil {
		return Quote{}, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		price := decimal.NewFromFloat(l.Product.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := shippingFlat
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}
	if len(lines) == 0 {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)
	discount := subtotal.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100))
	total := subtotal.Add(tax).Add(shipping).Sub(discount)

	return Quote{
		Subtotal: subtotal.Round(2),
		Shipping: shipping.Round(2),
		Tax:      tax.Round(2),
		Discount: discount.Round(2),
		Total:    total.Round(2),
	}, nil
}

// FreeShipping reports whether the quote waived shipping.
func (q Quote) FreeShipping() bool {
	return q.Shipping.IsZero()
}

// PlaceOrder validates the address, prices the ledger's lines and, on
// success, empties the ledger. Payment is mock; there is no settlement
// step.
func PlaceOrder(ctx context.Context, ledger *cart.Ledger, addr Address, promoCode string) (Order, error) {
	lines := ledger.Lines()
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if err := addr.Validate(); err != nil {
		return Order{}, err
	}
	quote, err := NewQuote(lines, promoCode)
	if err != nil {
		return Order{}, err
	}

	now := time.Now()
	days := standardDeliveryDays
	if quote.FreeShipping() {
		days = fastDeliveryDays
	}
	order := Order{
		Number:            util.OrderNumber(now),
		TrackingNumber:    util.TrackingNumber(),
		EstimatedDelivery: now.AddDate(0, 0, days),
		Items:             lines,
		Address:           addr,
		Quote:             quote,
		PlacedAt:          now,
	}

	ledger.Clear(ctx)
	return order, nil
}
