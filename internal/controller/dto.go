package controller

import (
	"fmt"

	"github.com/cassiomorais/codgateway/internal/domain/checkout"
	domainErrors "github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/domain/money"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/shopspring/decimal"
)

// --- Request DTOs ---
// Amounts travel as decimal strings so no precision is lost in JSON.

// PaymentRequest holds the input for a payment operation.
type PaymentRequest struct {
	Amount   string `json:"amount" validate:"required,numeric"`
	Currency string `json:"currency" validate:"required,len=3"`
	Token    string `json:"token"`
}

// SetActiveRequest toggles a plugin.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// TotalDTO is a taxed amount in a single currency.
type TotalDTO struct {
	Net      string `json:"net" validate:"required,numeric"`
	Gross    string `json:"gross" validate:"required,numeric"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// CheckoutTotalRequest holds the input of the checkout total hook.
type CheckoutTotalRequest struct {
	Checkout         checkout.Checkout       `json:"checkout"`
	ShippingAddress  *checkout.Address       `json:"shipping_address,omitempty"`
	BillingAddress   *checkout.Address       `json:"billing_address,omitempty"`
	DeliveryMethodID string                  `json:"delivery_method_id,omitempty"`
	Lines            []checkout.LineInfo     `json:"lines"`
	Address          *checkout.Address       `json:"address,omitempty"`
	Discounts        []checkout.DiscountInfo `json:"discounts,omitempty"`
	Previous         TotalDTO                `json:"previous"`
}

// --- Response DTOs ---

// PluginResponse is a loaded plugin with its current activation.
type PluginResponse struct {
	plugin.Manifest
	Active bool `json:"active"`
}

// PaymentConfigResponse lists the storefront payment config entries.
type PaymentConfigResponse struct {
	Config []gateway.PaymentConfigEntry `json:"config"`
}

// CurrenciesResponse lists supported currency codes.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// ClientTokenResponse carries the token a storefront client sends back.
type ClientTokenResponse struct {
	ClientToken          string `json:"client_token"`
	TokenRequiredAsInput bool   `json:"token_required_as_input"`
}

// CheckoutTotalResponse is the adjusted checkout total.
type CheckoutTotalResponse struct {
	Total      TotalDTO `json:"total"`
	FeeApplied bool     `json:"fee_applied"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Conversion helpers ---

// FromPlugin converts a loaded plugin to API response.
func FromPlugin(p plugin.PaymentGateway) PluginResponse {
	return PluginResponse{Manifest: p.Manifest(), Active: p.IsActive()}
}

// PaymentData converts the request to hook input.
func (r PaymentRequest) PaymentData() (gateway.PaymentData, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return gateway.PaymentData{}, fmt.Errorf("amount %q: %w", r.Amount, domainErrors.ErrInvalidAmount)
	}
	return gateway.PaymentData{
		Amount:   amount,
		Currency: gateway.Currency(r.Currency),
		Token:    r.Token,
	}, nil
}

// Info returns the checkout info part of the request.
func (r CheckoutTotalRequest) Info() checkout.Info {
	return checkout.Info{
		Checkout:         r.Checkout,
		ShippingAddress:  r.ShippingAddress,
		BillingAddress:   r.BillingAddress,
		DeliveryMethodID: r.DeliveryMethodID,
	}
}

// TaxedMoney parses the DTO amounts.
func (t TotalDTO) TaxedMoney() (money.TaxedMoney, error) {
	net, err := decimal.NewFromString(t.Net)
	if err != nil {
		return money.TaxedMoney{}, fmt.Errorf("net %q: %w", t.Net, domainErrors.ErrInvalidAmount)
	}
	gross, err := decimal.NewFromString(t.Gross)
	if err != nil {
		return money.TaxedMoney{}, fmt.Errorf("gross %q: %w", t.Gross, domainErrors.ErrInvalidAmount)
	}
	return money.TaxedMoney{
		Net:   money.New(net, t.Currency),
		Gross: money.New(gross, t.Currency),
	}, nil
}

// FromTaxedMoney converts a taxed amount to API form.
func FromTaxedMoney(t money.TaxedMoney) TotalDTO {
	return TotalDTO{
		Net:      t.Net.Amount.StringFixed(2),
		Gross:    t.Gross.Amount.StringFixed(2),
		Currency: t.Currency(),
	}
}
