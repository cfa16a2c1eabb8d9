package cli

import (
	"fmt"
	"os"

	"github.com/cassiomorais/codgateway/internal/infrastructure/config"
	"github.com/cassiomorais/codgateway/internal/infrastructure/observability"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/cassiomorais/codgateway/internal/plugin/cash"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the codctl command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "codctl",
		Short: "Inspect and exercise the cash on delivery gateway",
		Long: `codctl works against the cash on delivery gateway plugin directly,
without a running host. It prints the plugin schema, quotes checkout totals
with the configured fee and issues client tokens.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: search ./, ./config, /etc/codgateway)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Plugin log level")

	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newQuoteCmd(opts))
	rootCmd.AddCommand(newTokenCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (o *options) logger(cmd *cobra.Command) zerolog.Logger {
	return observability.InitLogger(o.logLevel, cmd.ErrOrStderr())
}

// cashConfiguration returns the stored cash configuration merged over the
// plugin defaults, plus the stored activation if one is set.
func (o *options) cashConfiguration() ([]plugin.ConfigItem, *bool, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	merged := plugin.MergeConfiguration(cash.DefaultConfiguration(), cfg.Plugins.Cash.Items())
	return merged, cfg.Plugins.Cash.Active, nil
}

func (o *options) newPlugin(cmd *cobra.Command, overrides ...plugin.ConfigItem) (*cash.Plugin, error) {
	items, active, err := o.cashConfiguration()
	if err != nil {
		return nil, err
	}
	isActive := cash.DefaultActive
	if active != nil {
		isActive = *active
	}
	return cash.New(plugin.MergeConfiguration(items, overrides), isActive, cash.WithLogger(o.logger(cmd)))
}
