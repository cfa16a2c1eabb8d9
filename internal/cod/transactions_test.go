package cod_test

import (
	"testing"

	"github.com/cassiomorais/codgateway/internal/cod"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type operation func(gateway.PaymentData, gateway.GatewayConfig) gateway.GatewayResponse

func TestOperations_AlwaysSucceed(t *testing.T) {
	info := testutil.NewPaymentData("150.75", "SAR", "tok_123")
	config := testutil.NewGatewayConfig("5.00")

	tests := []struct {
		name         string
		op           operation
		expectedKind gateway.TransactionKind
	}{
		{"authorize", cod.Authorize, gateway.KindAuth},
		{"capture", cod.Capture, gateway.KindCapture},
		{"refund", cod.Refund, gateway.KindRefund},
		{"void", cod.Void, gateway.KindVoid},
		{"process", cod.ProcessPayment, gateway.KindAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.op(info, config)

			assert.Nil(t, resp.Error)
			assert.True(t, resp.IsSuccess)
			assert.False(t, resp.ActionRequired)
			assert.Equal(t, tt.expectedKind, resp.Kind)
			assert.True(t, resp.Amount.Equal(info.Amount))
			assert.Equal(t, "SAR", resp.Currency)
			assert.Equal(t, "tok_123", resp.TransactionID)
		})
	}
}

// Confirm reports a capture kind and stringifies the currency. This is
// existing behavior of the gateway and is kept as is.
func TestConfirm_ReportsCaptureKind(t *testing.T) {
	info := testutil.NewPaymentData("20.00", "SAR", "tok_confirm")

	resp := cod.Confirm(info, testutil.NewGatewayConfig("0"))

	assert.Nil(t, resp.Error)
	assert.True(t, resp.IsSuccess)
	assert.False(t, resp.ActionRequired)
	assert.Equal(t, gateway.KindCapture, resp.Kind)
	assert.NotEqual(t, gateway.KindConfirm, resp.Kind)
	assert.Equal(t, info.Currency.String(), resp.Currency)
	assert.True(t, resp.Amount.Equal(info.Amount))
	assert.Equal(t, "tok_confirm", resp.TransactionID)
}

func TestProcessPayment_EqualsAuthorize(t *testing.T) {
	requests := []gateway.PaymentData{
		testutil.NewPaymentData("0.01", "SAR", "a"),
		testutil.NewPaymentData("999999.99", "USD", "b"),
		{Amount: decimal.Zero, Currency: "EUR", Token: ""},
	}
	config := testutil.NewGatewayConfig("5.00")

	for _, req := range requests {
		assert.Equal(t, cod.Authorize(req, config), cod.ProcessPayment(req, config))
	}
}

func TestOperations_DistinctKinds(t *testing.T) {
	info := testutil.NewPaymentData("1", "SAR", "t")
	config := testutil.NewGatewayConfig("0")

	kinds := map[gateway.TransactionKind]string{}
	for name, op := range map[string]operation{
		"authorize": cod.Authorize,
		"capture":   cod.Capture,
		"refund":    cod.Refund,
		"void":      cod.Void,
	} {
		kind := op(info, config).Kind
		_, dup := kinds[kind]
		assert.False(t, dup, "kind %s reused by %s", kind, name)
		kinds[kind] = name
	}
	assert.Len(t, kinds, 4)
}

func TestOperations_Idempotent(t *testing.T) {
	info := testutil.NewPaymentData("42.00", "SAR", "tok_repeat")
	config := testutil.NewGatewayConfig("0")

	first := cod.Capture(info, config)
	second := cod.Capture(info, config)
	assert.Equal(t, first, second)
}

func TestOperations_CopyAmountVerbatim(t *testing.T) {
	// scale survives the copy
	info := testutil.NewPaymentData("10.500", "SAR", "tok")

	resp := cod.Refund(info, testutil.NewGatewayConfig("0"))
	assert.Equal(t, "10.5", resp.Amount.String())
	assert.Equal(t, info.Amount.Exponent(), resp.Amount.Exponent())
}
