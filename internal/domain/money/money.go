package money

import (
	"fmt"

	"github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/shopspring/decimal"
)

// Money is a decimal amount in a single currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// New creates a Money value.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns m + other. Both values must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("add %s to %s: %w", other.Currency, m.Currency, errors.ErrCurrencyMismatch)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Equal reports whether both values have the same currency and numeric amount.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String returns a human-readable representation of the amount.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// TaxedMoney pairs the net and gross side of a price.
type TaxedMoney struct {
	Net   Money `json:"net"`
	Gross Money `json:"gross"`
}

// NewTaxed creates a TaxedMoney value. Both sides must share a currency.
func NewTaxed(net, gross Money) (TaxedMoney, error) {
	if net.Currency != gross.Currency {
		return TaxedMoney{}, fmt.Errorf("net %s, gross %s: %w", net.Currency, gross.Currency, errors.ErrCurrencyMismatch)
	}
	return TaxedMoney{Net: net, Gross: gross}, nil
}

// Currency returns the currency shared by Net and Gross.
func (t TaxedMoney) Currency() string {
	return t.Gross.Currency
}

// AddMoney adds an untaxed amount to both the net and gross side.
func (t TaxedMoney) AddMoney(m Money) (TaxedMoney, error) {
	net, err := t.Net.Add(m)
	if err != nil {
		return TaxedMoney{}, err
	}
	gross, err := t.Gross.Add(m)
	if err != nil {
		return TaxedMoney{}, err
	}
	return TaxedMoney{Net: net, Gross: gross}, nil
}

func (t TaxedMoney) Equal(other TaxedMoney) bool {
	return t.Net.Equal(other.Net) && t.Gross.Equal(other.Gross)
}
