package address

import (
	"encoding/binary"
	"fmt"

	"github.com/cloudflare/circl/xof"
)

const (
	// Length of an identity in letters
	Length = 60
	// PublicKeySize in bytes
	PublicKeySize = 32

	fragmentLetters = 14
	checksumLetters = 4
	checksumMask    = 0x3FFFF
)

// Identity returns the 60 letter identity for a public key: 56 letters of public key
// followed by a 4 letter checksum.
func Identity(pubkey [PublicKeySize]byte) string {
	id := make([]byte, 0, Length)
	for i := 0; i < PublicKeySize/8; i++ {
		fragment := binary.LittleEndian.Uint64(pubkey[i*8:])
		for j := 0; j < fragmentLetters; j++ {
			id = append(id, byte('A'+fragment%26))
			fragment /= 26
		}
	}
	sum := checksum(pubkey)
	for i := 0; i < checksumLetters; i++ {
		id = append(id, byte('A'+sum%26))
		sum /= 26
	}
	return string(id)
}

// Decode parses an identity into its public key. The identity must be canonical:
// re-encoding the public key has to reproduce it exactly, including the checksum.
func Decode(identity string) ([PublicKeySize]byte, error) {
	var pubkey [PublicKeySize]byte
	if len(identity) != Length {
		return pubkey, fmt.Errorf("invalid identity length: found %d, expected %d", len(identity), Length)
	}
	for i := 0; i < Length; i++ {
		if identity[i] < 'A' || identity[i] > 'Z' {
			return pubkey, fmt.Errorf("invalid identity: unexpected character %q at position %d", identity[i], i)
		}
	}
	for i := 0; i < PublicKeySize/8; i++ {
		var fragment uint64
		for j := fragmentLetters - 1; j >= 0; j-- {
			fragment = fragment*26 + uint64(identity[i*fragmentLetters+j]-'A')
		}
		binary.LittleEndian.PutUint64(pubkey[i*8:], fragment)
	}
	expected := Identity(pubkey)
	if expected[:Length-checksumLetters] != identity[:Length-checksumLetters] {
		return pubkey, fmt.Errorf("invalid identity: public key is out of range")
	}
	if expected != identity {
		return pubkey, fmt.Errorf("invalid identity: checksum mismatch")
	}
	return pubkey, nil
}

func checksum(pubkey [PublicKeySize]byte) uint32 {
	h := xof.K12D10.New()
	_, _ = h.Write(pubkey[:])
	var digest [4]byte
	_, _ = h.Read(digest[:3])
	return binary.LittleEndian.Uint32(digest[:]) & checksumMask
}
