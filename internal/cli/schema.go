package cli

import (
	"fmt"

	"github.com/cassiomorais/codgateway/internal/plugin/cash"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the plugin manifest and configuration structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(cash.Manifest())
			if err != nil {
				return fmt.Errorf("failed to marshal manifest: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect plugin configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective cash plugin configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, active, err := opts.cashConfiguration()
			if err != nil {
				return err
			}

			isActive := cash.DefaultActive
			if active != nil {
				isActive = *active
			}
			data, err := yaml.Marshal(map[string]any{
				"plugin":        cash.PluginID,
				"active":        isActive,
				"configuration": items,
			})
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "# Stored configuration merged over plugin defaults")
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return configCmd
}
