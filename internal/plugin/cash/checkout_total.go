package cash

import (
	"fmt"

	"github.com/cassiomorais/codgateway/internal/domain/checkout"
	"github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/cassiomorais/codgateway/internal/domain/money"
	"github.com/shopspring/decimal"
)

// CalculateCheckoutTotal adds the configured COD fee to the checkout total
// when the checkout's active payment uses this gateway.
//
// A fee that is not a decimal number is returned as an error wrapping
// ErrInvalidFee; the caller must not price the checkout in that case.
func (p *Plugin) CalculateCheckoutTotal(
	info checkout.Info,
	lines []checkout.LineInfo,
	address *checkout.Address,
	discounts []checkout.DiscountInfo,
	previous money.TaxedMoney,
) (money.TaxedMoney, error) {
	if !p.IsActive() {
		return previous, nil
	}

	if !p.validate(info, lines) {
		p.logger.Debug().Str("checkout", info.Checkout.Token).Msg("Checkout invalid in calculate checkout total")
		return previous, nil
	}

	payment, ok := info.Checkout.LastActivePayment()
	if !ok {
		return previous, nil
	}

	fee, err := decimal.NewFromString(p.config.ConnectionParams.CODFees)
	if err != nil {
		p.logger.Error().Err(err).Str("value", p.config.ConnectionParams.CODFees).Msg("COD fee is not a decimal")
		return previous, fmt.Errorf("%w %q: %v", errors.ErrInvalidFee, p.config.ConnectionParams.CODFees, err)
	}

	if payment.Gateway != PluginID || fee.IsZero() {
		return previous, nil
	}

	total, err := previous.AddMoney(money.New(fee, info.Checkout.Currency))
	if err != nil {
		return previous, fmt.Errorf("apply cod fee: %w", err)
	}

	p.logger.Debug().
		Str("checkout", info.Checkout.Token).
		Str("fee", fee.String()).
		Str("currency", info.Checkout.Currency).
		Msg("COD fee applied")

	return total, nil
}
