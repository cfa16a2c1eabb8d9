// Package cash implements the cash on delivery payment gateway plugin.
package cash

import (
	"github.com/cassiomorais/codgateway/internal/plugin"
)

const (
	// PluginID identifies the gateway in the host and on checkout payments.
	PluginID = "payments.cash"
	// GatewayName is the display name of the gateway.
	GatewayName = "Cash"
	// EntryPoint is the name the host loads the plugin by.
	EntryPoint = "cod"

	DefaultActive           = true
	ConfigurationPerChannel = false
)

// Configuration keys.
const (
	KeyCODFees                 = "cod_fees"
	KeySupportedCountries      = "supported_countries"
	KeyMaximumAllowedValue     = "maximum_allowed_value"
	KeySupportedCurrencies     = "supported_currencies"
	KeyAutomaticPaymentCapture = "automatic_payment_capture"
)

// DefaultConfiguration returns the declared default values. A fresh slice is
// returned on every call so callers cannot alter the defaults.
func DefaultConfiguration() []plugin.ConfigItem {
	return []plugin.ConfigItem{
		{Name: KeyCODFees, Value: 0.0},
		{Name: KeySupportedCountries, Value: "SA,"},
		{Name: KeyMaximumAllowedValue, Value: 0.0},
		{Name: KeySupportedCurrencies, Value: "SAR,"},
		{Name: KeyAutomaticPaymentCapture, Value: true},
	}
}

// ConfigStructure returns the declared schema of each configuration field.
func ConfigStructure() map[string]plugin.ConfigField {
	return map[string]plugin.ConfigField{
		KeyAutomaticPaymentCapture: {
			Label:    "Automatic payment capture",
			Type:     plugin.FieldBoolean,
			HelpText: "Determines if the host should automatically capture payments.",
		},
		KeySupportedCurrencies: {
			Label:    "Supported Currencies",
			Type:     plugin.FieldString,
			HelpText: "Determines currencies that support COD payments.",
		},
		KeySupportedCountries: {
			Label:    "Supported Countries",
			Type:     plugin.FieldString,
			HelpText: "Determines countries that support COD payments.",
		},
		KeyCODFees: {
			Label:    "COD Fees",
			Type:     plugin.FieldString,
			HelpText: "Cash on delivery fees.",
		},
		KeyMaximumAllowedValue: {
			Label:    "Maximum Allowed Value",
			Type:     plugin.FieldString,
			HelpText: "Cash maximum allowed value.",
		},
	}
}

// Manifest describes the cash gateway to the host.
func Manifest() plugin.Manifest {
	return plugin.Manifest{
		ID:                      PluginID,
		Name:                    GatewayName,
		DefaultActive:           DefaultActive,
		ConfigurationPerChannel: ConfigurationPerChannel,
		DefaultConfiguration:    DefaultConfiguration(),
		ConfigStructure:         ConfigStructure(),
	}
}
