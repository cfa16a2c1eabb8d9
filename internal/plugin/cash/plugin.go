package cash

import (
	"fmt"
	"strings"

	"github.com/cassiomorais/codgateway/internal/cod"
	"github.com/cassiomorais/codgateway/internal/domain/checkout"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Plugin is the cash on delivery gateway.
type Plugin struct {
	*plugin.Activation

	config   gateway.GatewayConfig
	validate checkout.Validator
	newToken func() string
	logger   zerolog.Logger
}

var _ plugin.PaymentGateway = (*Plugin)(nil)

type Option func(*Plugin)

func WithLogger(l zerolog.Logger) Option {
	return func(p *Plugin) { p.logger = l.With().Str("plugin", PluginID).Logger() }
}

// WithCheckoutValidator replaces the predicate deciding whether a checkout can be priced.
func WithCheckoutValidator(v checkout.Validator) Option {
	return func(p *Plugin) { p.validate = v }
}

// WithTokenGenerator replaces the client token source.
func WithTokenGenerator(fn func() string) Option {
	return func(p *Plugin) { p.newToken = fn }
}

// New builds the plugin from configuration supplied by the host. The
// configuration must already contain every declared key.
func New(configuration []plugin.ConfigItem, active bool, opts ...Option) (*Plugin, error) {
	config, err := buildGatewayConfig(configuration)
	if err != nil {
		return nil, fmt.Errorf("build %s gateway config: %w", PluginID, err)
	}

	p := &Plugin{
		Activation: plugin.NewActivation(active),
		config:     config,
		validate:   checkout.ValidateForTaxes,
		newToken:   func() string { return uuid.New().String() },
		logger:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(p)
	}

	p.logger.Info().
		Bool("active", active).
		Bool("auto_capture", config.AutoCapture).
		Str("supported_currencies", config.SupportedCurrencies).
		Msg("Cash gateway configured")

	return p, nil
}

// NewFactory returns the factory the host loads the plugin with. Stored
// configuration is merged over the declared defaults first.
func NewFactory(opts ...Option) plugin.Factory {
	return func(configuration []plugin.ConfigItem, active bool) (plugin.PaymentGateway, error) {
		merged := plugin.MergeConfiguration(DefaultConfiguration(), configuration)
		return New(merged, active, opts...)
	}
}

// Register exposes the plugin under its entry point name.
func Register(r *plugin.Registry, opts ...Option) {
	r.Register(EntryPoint, DefaultActive, NewFactory(opts...))
}

func (p *Plugin) Manifest() plugin.Manifest {
	return Manifest()
}

// GatewayConfig returns the configuration snapshot the plugin was built with.
func (p *Plugin) GatewayConfig() gateway.GatewayConfig {
	return p.config
}

func (p *Plugin) GetSupportedCurrencies(previous []string) []string {
	if !p.IsActive() {
		return previous
	}
	return splitList(p.config.SupportedCurrencies)
}

func (p *Plugin) AuthorizePayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	if !p.IsActive() {
		return previous
	}
	resp := cod.Authorize(info, p.config)
	return &resp
}

func (p *Plugin) CapturePayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	if !p.IsActive() {
		return previous
	}
	resp := cod.Capture(info, p.config)
	return &resp
}

func (p *Plugin) ConfirmPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	if !p.IsActive() {
		return previous
	}
	resp := cod.Confirm(info, p.config)
	return &resp
}

func (p *Plugin) RefundPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	if !p.IsActive() {
		return previous
	}
	resp := cod.Refund(info, p.config)
	return &resp
}

func (p *Plugin) VoidPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	if !p.IsActive() {
		return previous
	}
	resp := cod.Void(info, p.config)
	return &resp
}

func (p *Plugin) ProcessPayment(info gateway.PaymentData, previous *gateway.GatewayResponse) *gateway.GatewayResponse {
	if !p.IsActive() {
		return previous
	}
	resp := cod.ProcessPayment(info, p.config)
	return &resp
}

// GetClientToken returns a new random token on every call. The gateway never
// checks it; it only satisfies the host interface.
func (p *Plugin) GetClientToken(previous string) string {
	if !p.IsActive() {
		return previous
	}
	return p.newToken()
}

func (p *Plugin) GetPaymentConfig(previous []gateway.PaymentConfigEntry) []gateway.PaymentConfigEntry {
	if !p.IsActive() {
		return previous
	}
	params := p.config.ConnectionParams
	return []gateway.PaymentConfigEntry{
		{Field: "client_token", Value: p.GetClientToken("")},
		{Field: KeyCODFees, Value: params.CODFees},
		{Field: KeySupportedCountries, Value: params.SupportedCountries},
		{Field: KeyMaximumAllowedValue, Value: params.MaximumAllowedValue},
	}
}

// TokenIsRequiredAsPaymentInput is always false: cash needs no client token.
func (p *Plugin) TokenIsRequiredAsPaymentInput(previous bool) bool {
	if !p.IsActive() {
		return previous
	}
	return false
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
