package commands

import (
	"fmt"

	"github.com/cordialsys/address-parser/cmd/address-parser/setup"
	"github.com/cordialsys/address-parser/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <token> <address>",
		Short: "Check that an address is well formed for a token.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xcFactory := setup.UnwrapFactory(cmd.Context())
			token, address := args[0], args[1]

			ok, err := xcFactory.ValidateAddress(token, address)
			if err != nil {
				logrus.WithField("status", errors.StatusOf(err)).Debug("validation failed")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	return cmd
}
