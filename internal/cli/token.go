package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Issue a client token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.newPlugin(cmd)
			if err != nil {
				return err
			}
			token := p.GetClientToken("")
			if token == "" {
				return errors.New("cash plugin is inactive")
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
