package testutil

import (
	"github.com/cassiomorais/codgateway/internal/domain/checkout"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/domain/money"
	"github.com/cassiomorais/codgateway/internal/plugin"
)

// --- Payment Gateway Mock ---

// MockGateway is a mock implementation of plugin.PaymentGateway. Hooks
// without a Func set return their previous value.
type MockGateway struct {
	*plugin.Activation
	ManifestValue plugin.Manifest

	PaymentFunc       func(op plugin.Operation, info gateway.PaymentData) *gateway.GatewayResponse
	CheckoutTotalFunc func(info checkout.Info, previous money.TaxedMoney) (money.TaxedMoney, error)
	Calls             []plugin.Operation
}

var _ plugin.PaymentGateway = (*MockGateway)(nil)

func NewMockGateway(id string, active bool) *MockGateway {
	return &MockGateway{
		Activation:    plugin.NewActivation(active),
		ManifestValue: plugin.Manifest{ID: id, Name: id, DefaultActive: active},
	}
}

func (m *MockGateway) Manifest() plugin.Manifest { return m.ManifestValue }

func (m *MockGateway) GetSupportedCurrencies(previous []string) []string { return previous }

func (m *MockGateway) payment(op plugin.Operation, info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	m.Calls = append(m.Calls, op)
	if m.PaymentFunc != nil {
		return m.PaymentFunc(op, info)
	}
	return previous
}

func (m *MockGateway) AuthorizePayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	return m.payment(plugin.OpAuthorize, info, previous)
}

func (m *MockGateway) CapturePayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	return m.payment(plugin.OpCapture, info, previous)
}

func (m *MockGateway) ConfirmPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	return m.payment(plugin.OpConfirm, info, previous)
}

func (m *MockGateway) RefundPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	return m.payment(plugin.OpRefund, info, previous)
}

func (m *MockGateway) VoidPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	return m.payment(plugin.OpVoid, info, previous)
}

func (m *MockGateway) ProcessPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	return m.payment(plugin.OpProcess, info, previous)
}

func (m *MockGateway) GetClientToken(previous string) string { return previous }

func (m *MockGateway) GetPaymentConfig(previous []gateway.PaymentConfigEntry) []gateway.PaymentConfigEntry {
	return previous
}

func (m *MockGateway) TokenIsRequiredAsPaymentInput(previous bool) bool { return previous }

func (m *MockGateway) CalculateCheckoutTotal(
	info checkout.Info,
	lines []checkout.LineInfo,
	address *checkout.Address,
	discounts []checkout.DiscountInfo,
	previous money.TaxedMoney,
) (money.TaxedMoney, error) {
	if m.CheckoutTotalFunc != nil {
		return m.CheckoutTotalFunc(info, previous)
	}
	return previous, nil
}

// MockFactory returns a factory that always yields g with the requested activation.
func MockFactory(g plugin.PaymentGateway, err error) plugin.Factory {
	return func(configuration []plugin.ConfigItem, active bool) (plugin.PaymentGateway, error) {
		if err != nil {
			return nil, err
		}
		g.SetActive(active)
		return g, nil
	}
}
