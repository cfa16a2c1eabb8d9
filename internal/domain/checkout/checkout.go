package checkout

import (
	"time"

	"github.com/cassiomorais/codgateway/internal/domain/money"
)

// Address is a postal address attached to a checkout.
type Address struct {
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	StreetAddress1 string `json:"street_address_1,omitempty"`
	City           string `json:"city,omitempty"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
}

// LineInfo is a single checkout line.
type LineInfo struct {
	VariantID        string      `json:"variant_id"`
	Quantity         int         `json:"quantity"`
	UnitPrice        money.Money `json:"unit_price"`
	ShippingRequired bool        `json:"shipping_required"`
}

// DiscountInfo describes a discount applicable to the checkout.
type DiscountInfo struct {
	Code  string      `json:"code"`
	Value money.Money `json:"value"`
}

// Payment is a payment attempt recorded against a checkout.
type Payment struct {
	Gateway   string    `json:"gateway"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Checkout is the in-progress order.
type Checkout struct {
	Token    string    `json:"token"`
	Currency string    `json:"currency"`
	Payments []Payment `json:"payments"`
}

// LastActivePayment returns the most recently created active payment.
func (c Checkout) LastActivePayment() (*Payment, bool) {
	var last *Payment
	for i := range c.Payments {
		p := &c.Payments[i]
		if !p.IsActive {
			continue
		}
		if last == nil || !p.CreatedAt.Before(last.CreatedAt) {
			last = p
		}
	}
	if last == nil {
		return nil, false
	}
	found := *last
	return &found, true
}

// Info bundles the checkout with its delivery details.
type Info struct {
	Checkout         Checkout `json:"checkout"`
	ShippingAddress  *Address `json:"shipping_address,omitempty"`
	BillingAddress   *Address `json:"billing_address,omitempty"`
	DeliveryMethodID string   `json:"delivery_method_id,omitempty"`
}
