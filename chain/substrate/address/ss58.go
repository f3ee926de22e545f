package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	PublicKeySize  = 32
	ChecksumLength = 2
)

// Domain separation for the checksum hash. Changing it breaks every address.
var checksumPrefix = []byte("SS58PRE")

var (
	ErrBadEncoding      = errors.New("base 58 requirement is violated")
	ErrBadLength        = errors.New("length is bad")
	ErrInvalidPrefix    = errors.New("invalid ss58 prefix byte")
	ErrFormatNotAllowed = errors.New("disallowed ss58 address format for this datatype")
	ErrInvalidChecksum  = errors.New("invalid checksum")
)

// PublicKey is the 32 byte account key an SS58 address encodes.
type PublicKey [PublicKeySize]byte

func (pk PublicKey) Bytes() []byte {
	return pk[:]
}

func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

// AccountID converts the key into the account type used by substrate RPC clients.
func (pk PublicKey) AccountID() (*types.AccountID, error) {
	return types.NewAccountID(pk[:])
}

// Decode parses an SS58 address and returns its public key.
func Decode(address string) (PublicKey, error) {
	_, pk, err := DecodeWithFormat(address)
	return pk, err
}

// DecodeWithFormat parses an SS58 address and returns its format and public key.
// Checks run in a fixed order: encoding, length, prefix, length, format, checksum.
func DecodeWithFormat(address string) (Format, PublicKey, error) {
	var pk PublicKey

	var data []byte
	if address != "" {
		var err error
		data, err = base58.Decode(address)
		if err != nil {
			return 0, pk, ErrBadEncoding
		}
	}
	if len(data) < 2 {
		return 0, pk, ErrBadLength
	}

	format, prefixLen, err := DecodePrefix(data[0], data[1])
	if err != nil {
		return 0, pk, err
	}
	if len(data) != prefixLen+PublicKeySize+ChecksumLength {
		return 0, pk, ErrBadLength
	}
	if format.IsReserved() {
		return 0, pk, ErrFormatNotAllowed
	}

	body := data[:prefixLen+PublicKeySize]
	hash := checksum(body)
	if !bytes.Equal(data[prefixLen+PublicKeySize:], hash[:ChecksumLength]) {
		return 0, pk, ErrInvalidChecksum
	}

	copy(pk[:], data[prefixLen:prefixLen+PublicKeySize])
	return format, pk, nil
}

func checksum(body []byte) [blake2b.Size]byte {
	preimage := make([]byte, 0, len(checksumPrefix)+len(body))
	preimage = append(preimage, checksumPrefix...)
	preimage = append(preimage, body...)
	return blake2b.Sum512(preimage)
}
