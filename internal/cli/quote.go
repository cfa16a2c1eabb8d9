package cli

import (
	"fmt"
	"time"

	"github.com/cassiomorais/codgateway/internal/domain/checkout"
	"github.com/cassiomorais/codgateway/internal/domain/money"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/cassiomorais/codgateway/internal/plugin/cash"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type quoteFlags struct {
	total    string
	currency string
	fee      string
	gateway  string
	country  string
}

func newQuoteCmd(opts *options) *cobra.Command {
	f := &quoteFlags{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a checkout total with the cash on delivery fee",
		Example: `  codctl quote --total 100.00 --currency SAR --fee 5.00
  codctl quote --total 100.00 --currency SAR --gateway payments.stripe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, opts, f)
		},
	}

	cmd.Flags().StringVar(&f.total, "total", "", "Checkout total before the fee")
	cmd.Flags().StringVar(&f.currency, "currency", "SAR", "Checkout currency")
	cmd.Flags().StringVar(&f.fee, "fee", "", "Override the configured cod_fees")
	cmd.Flags().StringVar(&f.gateway, "gateway", cash.PluginID, "Gateway of the active checkout payment")
	cmd.Flags().StringVar(&f.country, "country", "SA", "Shipping country")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func runQuote(cmd *cobra.Command, opts *options, f *quoteFlags) error {
	amount, err := decimal.NewFromString(f.total)
	if err != nil {
		return fmt.Errorf("invalid --total %q: %w", f.total, err)
	}

	var overrides []plugin.ConfigItem
	if f.fee != "" {
		overrides = append(overrides, plugin.ConfigItem{Name: cash.KeyCODFees, Value: f.fee})
	}
	p, err := opts.newPlugin(cmd, overrides...)
	if err != nil {
		return err
	}

	address := &checkout.Address{Country: f.country, PostalCode: "00000"}
	info := checkout.Info{
		Checkout: checkout.Checkout{
			Token:    "codctl-quote",
			Currency: f.currency,
			Payments: []checkout.Payment{
				{Gateway: f.gateway, IsActive: true, CreatedAt: time.Now()},
			},
		},
		ShippingAddress:  address,
		DeliveryMethodID: "codctl",
	}
	lines := []checkout.LineInfo{
		{VariantID: "codctl", Quantity: 1, UnitPrice: money.New(amount, f.currency), ShippingRequired: true},
	}
	previous := money.TaxedMoney{
		Net:   money.New(amount, f.currency),
		Gross: money.New(amount, f.currency),
	}

	total, err := p.CalculateCheckoutTotal(info, lines, address, nil, previous)
	if err != nil {
		return err
	}

	note := "no fee"
	if !total.Equal(previous) {
		note = "fee applied"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", previous.Gross, total.Gross, note)
	return nil
}
