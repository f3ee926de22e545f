package commands

import (
	"fmt"

	"github.com/cordialsys/address-parser/chain/substrate/address"
	"github.com/cordialsys/address-parser/cmd/address-parser/setup"
	"github.com/spf13/cobra"
)

type inspection struct {
	Format     uint16 `yaml:"format"`
	FormatName string `yaml:"format_name"`
	PublicKey  string `yaml:"public_key"`
	AccountID  string `yaml:"account_id"`
	Token      string `yaml:"token,omitempty"`
	Converted  string `yaml:"converted,omitempty"`
}

func CmdInspect() *cobra.Command {
	format := ""
	toFormat := 0
	cmd := &cobra.Command{
		Use:   "inspect <ss58-address>",
		Short: "Decode an SS58 address into its format and public key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xcFactory := setup.UnwrapFactory(cmd.Context())
			convert := cmd.Flags().Changed("to-format")
			if convert && (toFormat < 0 || toFormat > int(address.MaxFormat)) {
				return fmt.Errorf("invalid --to-format %d: must be between 0 and %d", toFormat, uint16(address.MaxFormat))
			}

			addressFormat, publicKey, err := address.DecodeWithFormat(args[0])
			if err != nil {
				return err
			}
			accountID, err := publicKey.AccountID()
			if err != nil {
				return err
			}
			result := inspection{
				Format:     uint16(addressFormat),
				FormatName: addressFormat.Name(),
				PublicKey:  publicKey.String(),
				AccountID:  accountID.ToHexString(),
			}
			for _, token := range xcFactory.GetAllTokens() {
				if token.ChainPrefix != nil && *token.ChainPrefix == uint16(addressFormat) {
					result.Token = string(token.Token)
				}
			}
			if convert {
				result.Converted, err = address.Encode(address.Format(toFormat), publicKey)
				if err != nil {
					return err
				}
			}
			return printFormatted(cmd.OutOrStdout(), format, result)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format, yaml or json.")
	cmd.Flags().IntVar(&toFormat, "to-format", 0, "Also print the address re-encoded in this ss58 format.")
	return cmd
}
