package cash

import (
	"fmt"
	"strconv"

	"github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/plugin"
)

var requiredKeys = []string{
	KeyCODFees,
	KeySupportedCountries,
	KeyMaximumAllowedValue,
	KeySupportedCurrencies,
	KeyAutomaticPaymentCapture,
}

// buildGatewayConfig turns stored configuration into an immutable GatewayConfig.
// Numeric values are kept as text; they are parsed where they are used.
func buildGatewayConfig(items []plugin.ConfigItem) (gateway.GatewayConfig, error) {
	values := plugin.ConfigMap(items)
	for _, key := range requiredKeys {
		if _, ok := values[key]; !ok {
			return gateway.GatewayConfig{}, errors.NewConfigError(key, errors.ErrConfigKeyMissing)
		}
	}

	autoCapture, err := boolValue(KeyAutomaticPaymentCapture, values[KeyAutomaticPaymentCapture])
	if err != nil {
		return gateway.GatewayConfig{}, err
	}

	var text [4]string
	for i, key := range []string{KeyCODFees, KeySupportedCountries, KeyMaximumAllowedValue, KeySupportedCurrencies} {
		s, err := stringValue(key, values[key])
		if err != nil {
			return gateway.GatewayConfig{}, err
		}
		text[i] = s
	}

	return gateway.GatewayConfig{
		GatewayName:         GatewayName,
		AutoCapture:         autoCapture,
		SupportedCurrencies: text[3],
		ConnectionParams: gateway.ConnectionParams{
			CODFees:             text[0],
			SupportedCountries:  text[1],
			MaximumAllowedValue: text[2],
		},
	}, nil
}

func boolValue(key string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, errors.NewConfigError(key, fmt.Errorf("%w: %q is not a boolean", errors.ErrInvalidConfigValue, b))
		}
		return parsed, nil
	default:
		return false, errors.NewConfigError(key, fmt.Errorf("%w: unexpected type %T", errors.ErrInvalidConfigValue, v))
	}
}

func stringValue(key string, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	default:
		return "", errors.NewConfigError(key, fmt.Errorf("%w: unexpected type %T", errors.ErrInvalidConfigValue, v))
	}
}
