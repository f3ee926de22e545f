package main

import (
	"context"
	"os"

	"github.com/cordialsys/address-parser/cmd/address-parser/commands"
	"github.com/cordialsys/address-parser/cmd/address-parser/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdAddressParser() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "address-parser",
		Short:        "Validate blockchain addresses by token",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			if err := setup.ConfigureLogger(args); err != nil {
				return err
			}

			xcFactory, err := setup.LoadFactory(args)
			if err != nil {
				return err
			}
			logrus.WithField("tokens", len(xcFactory.GetAllTokens())).Debug("loaded token table")

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(setup.WrapFactory(ctx, xcFactory))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdServe())
	cmd.AddCommand(commands.CmdValidate())
	cmd.AddCommand(commands.CmdTokens())
	cmd.AddCommand(commands.CmdInspect())

	return cmd
}

func main() {
	rootCmd := CmdAddressParser()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
