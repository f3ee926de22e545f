package address_test

import (
	"testing"

	"github.com/cordialsys/address-parser/chain/substrate/address"
	"github.com/stretchr/testify/require"
)

func TestDecodePrefixSingleByte(t *testing.T) {
	require := require.New(t)
	for b0 := 0; b0 < 64; b0++ {
		// second byte is ignored for the one byte form
		format, width, err := address.DecodePrefix(byte(b0), 0xff)
		require.NoError(err)
		require.Equal(1, width)
		require.Equal(address.Format(b0), format)
	}
}

func TestDecodePrefixDoubleByte(t *testing.T) {
	tests := []struct {
		name   string
		b0, b1 byte
		format address.Format
	}{
		{name: "64", b0: 0x50, b1: 0x00, format: 64},
		{name: "autonomys", b0: 0x73, b1: 0x97, format: 6094},
		{name: "max", b0: 0x7f, b1: 0xff, format: 16383},
		{name: "zero in long form", b0: 0x40, b1: 0x00, format: 0},
		{name: "46 in long form", b0: 0x4b, b1: 0x80, format: 46},
		{name: "high byte only", b0: 0x40, b1: 0x3f, format: 0x3f00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			format, width, err := address.DecodePrefix(tt.b0, tt.b1)
			require.NoError(err)
			require.Equal(2, width)
			require.Equal(tt.format, format)
		})
	}
}

func TestDecodePrefixRejected(t *testing.T) {
	require := require.New(t)
	for b0 := 128; b0 < 256; b0++ {
		_, _, err := address.DecodePrefix(byte(b0), 0)
		require.ErrorIs(err, address.ErrInvalidPrefix)
	}
}

func TestFormatReserved(t *testing.T) {
	require := require.New(t)
	require.True(address.Format(46).IsReserved())
	require.True(address.Format(47).IsReserved())
	require.False(address.Format(0).IsReserved())
	require.False(address.Format(42).IsReserved())
	require.False(address.Format(6094).IsReserved())
	require.False(address.MaxFormat.IsReserved())
}

func TestFormatName(t *testing.T) {
	require := require.New(t)
	require.Equal("polkadot", address.Format(0).Name())
	require.Equal("autonomys", address.Format(6094).Name())
	require.Equal("custom(1234)", address.Format(1234).Name())
}
