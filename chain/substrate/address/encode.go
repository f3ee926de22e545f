package address

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// EncodePrefix returns the one or two byte prefix for a format.
func EncodePrefix(format Format) ([]byte, error) {
	if format > MaxFormat {
		return nil, fmt.Errorf("ss58 format %d is out of range", uint16(format))
	}
	if format < 64 {
		return []byte{byte(format)}, nil
	}
	return []byte{
		byte((format&0b1111_1100)>>2) | 0b0100_0000,
		byte(format>>8) | byte(format&0b11)<<6,
	}, nil
}

// Encode returns the SS58 address of a public key in the given format.
func Encode(format Format, pk PublicKey) (string, error) {
	if format.IsReserved() {
		return "", ErrFormatNotAllowed
	}
	prefix, err := EncodePrefix(format)
	if err != nil {
		return "", err
	}
	body := make([]byte, 0, len(prefix)+PublicKeySize+ChecksumLength)
	body = append(body, prefix...)
	body = append(body, pk[:]...)
	hash := checksum(body)
	body = append(body, hash[:ChecksumLength]...)
	return base58.Encode(body), nil
}
