package address

import (
	"fmt"
)

// Format is the SS58 address format (network identifier) carried in the
// leading one or two bytes of a decoded address. Valid values are 0-16383.
type Format uint16

const MaxFormat Format = 0x3FFF

// Formats 46 and 47 are reserved by the SS58 registry and never identify a network.
var reservedFormats = map[Format]bool{
	46: true,
	47: true,
}

// A handful of well-known registry entries, used for display only.
var formatNames = map[Format]string{
	0:    "polkadot",
	2:    "kusama",
	5:    "astar",
	7:    "edgeware",
	8:    "karura",
	10:   "acala",
	42:   "substrate",
	46:   "reserved46",
	47:   "reserved47",
	2254: "subspace_testnet",
	6094: "autonomys",
}

func (f Format) IsReserved() bool {
	return f > MaxFormat || reservedFormats[f]
}

func (f Format) Name() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("custom(%d)", uint16(f))
}

func (f Format) String() string {
	return fmt.Sprintf("%d", uint16(f))
}

// DecodePrefix reads the format from the first two bytes of a decoded address.
// The second byte is only consulted for the two byte form.
//
//	b0 in [0, 63]:   one byte, format = b0
//	b0 in [64, 127]: two bytes, 01aaaaaa bbcccccc -> LE 16-bit aaaaaabb 00cccccc
//	b0 >= 128:       invalid
func DecodePrefix(b0 byte, b1 byte) (Format, int, error) {
	switch {
	case b0 < 64:
		return Format(b0), 1, nil
	case b0 < 128:
		lower := (b0 << 2) | (b1 >> 6)
		upper := b1 & 0b0011_1111
		return Format(uint16(lower) | uint16(upper)<<8), 2, nil
	default:
		return 0, 0, ErrInvalidPrefix
	}
}
