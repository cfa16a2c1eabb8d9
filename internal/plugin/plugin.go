// Package plugin defines the contract between the host and its payment gateway
// plugins, and the registry the host uses to load them.
package plugin

import (
	"sync/atomic"

	"github.com/cassiomorais/codgateway/internal/domain/checkout"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/domain/money"
)

// ConfigFieldType is the type tag of a configuration field.
type ConfigFieldType string

const (
	FieldBoolean ConfigFieldType = "boolean"
	FieldString  ConfigFieldType = "string"
)

// ConfigItem is one stored configuration value.
type ConfigItem struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// ConfigField describes how a configuration value is presented and typed.
type ConfigField struct {
	Label    string          `json:"label" yaml:"label"`
	Type     ConfigFieldType `json:"type" yaml:"type"`
	HelpText string          `json:"help_text" yaml:"help_text"`
}

// Manifest is the static identity of a plugin.
type Manifest struct {
	ID                      string                 `json:"id" yaml:"id"`
	Name                    string                 `json:"name" yaml:"name"`
	DefaultActive           bool                   `json:"default_active" yaml:"default_active"`
	ConfigurationPerChannel bool                   `json:"configuration_per_channel" yaml:"configuration_per_channel"`
	DefaultConfiguration    []ConfigItem           `json:"default_configuration" yaml:"default_configuration"`
	ConfigStructure         map[string]ConfigField `json:"config_structure" yaml:"config_structure"`
}

// PaymentGateway is the hook surface the host calls on a payment plugin.
//
// Every hook receives the value computed so far by previous plugins and must
// return it unchanged when the plugin is inactive.
type PaymentGateway interface {
	Manifest() Manifest
	IsActive() bool
	SetActive(active bool)

	GetSupportedCurrencies(previous []string) []string
	AuthorizePayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse
	CapturePayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse
	ConfirmPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse
	RefundPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse
	VoidPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse
	ProcessPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse
	GetClientToken(previous string) string
	GetPaymentConfig(previous []gateway.PaymentConfigEntry) []gateway.PaymentConfigEntry
	TokenIsRequiredAsPaymentInput(previous bool) bool
	CalculateCheckoutTotal(
		info checkout.Info,
		lines []checkout.LineInfo,
		address *checkout.Address,
		discounts []checkout.DiscountInfo,
		previous money.TaxedMoney,
	) (money.TaxedMoney, error)
}

// Factory builds a plugin from its stored configuration and activation.
type Factory func(configuration []ConfigItem, active bool) (PaymentGateway, error)

// Activation holds the active flag the host toggles on a plugin instance.
// Plugins embed it to satisfy IsActive and SetActive.
type Activation struct {
	active atomic.Bool
}

func NewActivation(active bool) *Activation {
	a := &Activation{}
	a.active.Store(active)
	return a
}

func (a *Activation) IsActive() bool {
	return a.active.Load()
}

func (a *Activation) SetActive(active bool) {
	a.active.Store(active)
}

// MergeConfiguration overlays stored values on the declared defaults.
// The order of defaults is kept and names not declared in defaults are dropped.
func MergeConfiguration(defaults, overrides []ConfigItem) []ConfigItem {
	byName := make(map[string]any, len(overrides))
	for _, item := range overrides {
		byName[item.Name] = item.Value
	}

	merged := make([]ConfigItem, 0, len(defaults))
	for _, item := range defaults {
		if v, ok := byName[item.Name]; ok {
			item.Value = v
		}
		merged = append(merged, item)
	}
	return merged
}

// ConfigMap indexes configuration items by name.
func ConfigMap(items []ConfigItem) map[string]any {
	m := make(map[string]any, len(items))
	for _, item := range items {
		m[item.Name] = item.Value
	}
	return m
}
