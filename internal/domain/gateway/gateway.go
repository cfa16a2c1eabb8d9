package gateway

import (
	"github.com/shopspring/decimal"
)

// TransactionKind classifies the effect of a payment operation.
type TransactionKind string

const (
	KindAuth    TransactionKind = "auth"
	KindCapture TransactionKind = "capture"
	KindConfirm TransactionKind = "confirm"
	KindRefund  TransactionKind = "refund"
	KindVoid    TransactionKind = "void"
)

// Currency is an ISO 4217 currency code as carried by a payment request.
type Currency string

func (c Currency) String() string {
	return string(c)
}

// PaymentData describes a single payment attempt handed to the gateway by the host.
type PaymentData struct {
	Amount   decimal.Decimal
	Currency Currency
	Token    string
}

// GatewayResponse is the outcome of a transaction operation.
type GatewayResponse struct {
	Error          *string         `json:"error"`
	IsSuccess      bool            `json:"is_success"`
	ActionRequired bool            `json:"action_required"`
	Kind           TransactionKind `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	TransactionID  string          `json:"transaction_id"`
}

// ConnectionParams are the gateway specific settings exposed to the storefront.
type ConnectionParams struct {
	CODFees             string `json:"cod_fees"`
	SupportedCountries  string `json:"supported_countries"`
	MaximumAllowedValue string `json:"maximum_allowed_value"`
}

// GatewayConfig is built once when the plugin is constructed and never changes afterwards.
type GatewayConfig struct {
	GatewayName         string
	AutoCapture         bool
	SupportedCurrencies string
	ConnectionParams    ConnectionParams
}

// PaymentConfigEntry is one field of the gateway config rendered by a storefront.
type PaymentConfigEntry struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
