package commands

import (
	"github.com/cordialsys/address-parser/cmd/address-parser/setup"
	"github.com/spf13/cobra"
)

func CmdTokens() *cobra.Command {
	format := ""
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List the tokens addresses can be validated for.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			xcFactory := setup.UnwrapFactory(cmd.Context())
			return printFormatted(cmd.OutOrStdout(), format, xcFactory.GetAllTokens())
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format, yaml or json.")
	return cmd
}
