package testutil

import (
	"time"

	"github.com/cassiomorais/codgateway/internal/domain/checkout"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/domain/money"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/shopspring/decimal"
)

func NewPaymentData(amount, currency, token string) gateway.PaymentData {
	return gateway.PaymentData{
		Amount:   decimal.RequireFromString(amount),
		Currency: gateway.Currency(currency),
		Token:    token,
	}
}

func NewGatewayConfig(fee string) gateway.GatewayConfig {
	return gateway.GatewayConfig{
		GatewayName:         "Cash",
		AutoCapture:         true,
		SupportedCurrencies: "SAR,",
		ConnectionParams: gateway.ConnectionParams{
			CODFees:             fee,
			SupportedCountries:  "SA,",
			MaximumAllowedValue: "0",
		},
	}
}

// CashConfiguration returns a complete cash plugin configuration with the given fee.
func CashConfiguration(fee any) []plugin.ConfigItem {
	return []plugin.ConfigItem{
		{Name: "cod_fees", Value: fee},
		{Name: "supported_countries", Value: "SA,"},
		{Name: "maximum_allowed_value", Value: "1000"},
		{Name: "supported_currencies", Value: "SAR,"},
		{Name: "automatic_payment_capture", Value: true},
	}
}

func NewAddress() *checkout.Address {
	return &checkout.Address{
		FirstName:      "Noura",
		StreetAddress1: "King Fahd Rd",
		City:           "Riyadh",
		PostalCode:     "12271",
		Country:        "SA",
	}
}

func NewLines() []checkout.LineInfo {
	return []checkout.LineInfo{
		{
			VariantID:        "variant-1",
			Quantity:         2,
			UnitPrice:        money.New(decimal.NewFromInt(50), "SAR"),
			ShippingRequired: true,
		},
	}
}

// NewCheckoutInfo returns a checkout that passes tax validation and whose
// last active payment uses gatewayID. An empty gatewayID leaves it without payments.
func NewCheckoutInfo(gatewayID, currency string) checkout.Info {
	c := checkout.Checkout{Token: "checkout-1", Currency: currency}
	if gatewayID != "" {
		c.Payments = []checkout.Payment{
			{Gateway: gatewayID, IsActive: true, CreatedAt: time.Now()},
		}
	}
	return checkout.Info{
		Checkout:         c,
		ShippingAddress:  NewAddress(),
		BillingAddress:   NewAddress(),
		DeliveryMethodID: "standard",
	}
}

// NewTotal returns a total whose net and gross are both amount.
func NewTotal(amount, currency string) money.TaxedMoney {
	m := money.New(decimal.RequireFromString(amount), currency)
	return money.TaxedMoney{Net: m, Gross: m}
}
