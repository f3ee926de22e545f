package aleo_test

import (
	"testing"

	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/chain/aleo"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name      string
		address   ap.Address
		wantError bool
		errorMsg  string
	}{
		{
			name:    "Aleo - valid address",
			address: "aleo1666y6x0qcxa7syyahys6tzalp3aqppqwj7tdf6purwtlyjkpwsxs3wtxlp",
		},
		{
			name:    "Aleo - valid address, small x",
			address: "aleo1qgqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqanmpl0",
		},
		{
			name:    "Aleo - valid address, negated y in subgroup",
			address: "aleo1rgqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqz32r5t",
		},
		{
			name:      "Aleo - bech32 instead of bech32m",
			address:   "aleo1666y6x0qcxa7syyahys6tzalp3aqppqwj7tdf6purwtlyjkpwsxsyjm26r",
			wantError: true,
			errorMsg:  "expected bech32m",
		},
		{
			name:      "Aleo - bad checksum",
			address:   "aleo1666y6x0qcxa7syyahys6tzalp3aqppqwj7tdf6purwtlyjkpwsxs3wtxlq",
			wantError: true,
			errorMsg:  "failed to decode address",
		},
		{
			name:      "Aleo - wrong prefix",
			address:   "aleb1666y6x0qcxa7syyahys6tzalp3aqppqwj7tdf6purwtlyjkpwsxs82ykn6",
			wantError: true,
			errorMsg:  "invalid prefix",
		},
		{
			name:      "Aleo - too short",
			address:   "aleo1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq4fnjeq",
			wantError: true,
			errorMsg:  "invalid account address length",
		},
		{
			name:      "Aleo - x not on curve",
			address:   "aleo1qvqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqm4th9s",
			wantError: true,
			errorMsg:  "not on the curve",
		},
		{
			name:      "Aleo - point outside the subgroup",
			address:   "aleo1pyqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq9qdtxu",
			wantError: true,
			errorMsg:  "failed to recover an affine group",
		},
		{
			name:      "Aleo - x not canonical",
			address:   "aleo1qvqqqqqqsqgs5qgqqrg0ua42tyqmqd6urexmgczk55kf5hn94vfqc5sr09",
			wantError: true,
			errorMsg:  "not a field element",
		},
		{
			name:      "Aleo - upper case",
			address:   "ALEO1666Y6X0QCXA7SYYAHYS6TZALP3AQPPQWJ7TDF6PURWTLYJKPWSXS3WTXLP",
		},
		{
			name:      "Aleo - substrate address",
			address:   "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
			wantError: true,
		},
		{
			name:      "Aleo - empty",
			address:   "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			err := aleo.ValidateAddress(ap.NewTokenConfig(ap.ALEO), tt.address)

			if tt.wantError {
				require.Error(err)
				if tt.errorMsg != "" {
					require.Contains(err.Error(), tt.errorMsg)
				}
			} else {
				require.NoError(err)
			}
		})
	}
}
