package address

import (
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
)

// Size of a public address in bytes
const Size = 32

// Decode parses a hex public address into its transmission key, a point in the
// prime order subgroup of the Jubjub curve.
func Decode(address string) (*twistededwards.PointAffine, error) {
	bz, err := hex.DecodeString(address)
	if err != nil {
		return nil, fmt.Errorf("invalid public address: %v", err)
	}
	if len(bz) != Size {
		return nil, fmt.Errorf("invalid public address: expected %d bytes, got %d", Size, len(bz))
	}
	return FromBytes(bz)
}

// FromBytes decodes a compressed Jubjub point: the little-endian y-coordinate
// with the sign of x in the most significant bit.
func FromBytes(bz []byte) (*twistededwards.PointAffine, error) {
	if len(bz) != Size {
		return nil, fmt.Errorf("invalid public address: expected %d bytes, got %d", Size, len(bz))
	}
	yBE := slices.Clone(bz)
	sign := yBE[Size-1] >> 7
	yBE[Size-1] &= 0x7f
	slices.Reverse(yBE)

	var y fr.Element
	if err := y.SetBytesCanonical(yBE); err != nil {
		return nil, fmt.Errorf("invalid public address: y-coordinate is not a field element")
	}

	curve := twistededwards.GetEdwardsCurve()

	// a*x^2 + y^2 = 1 + d*x^2*y^2  =>  x^2 = (1 - y^2) / (a - d*y^2)
	var y2, num, den, one fr.Element
	one.SetOne()
	y2.Square(&y)
	num.Sub(&one, &y2)
	den.Mul(&curve.D, &y2)
	den.Sub(&curve.A, &den)
	if den.IsZero() {
		return nil, fmt.Errorf("invalid public address: not a point on the curve")
	}
	den.Inverse(&den)
	num.Mul(&num, &den)

	var x fr.Element
	if x.Sqrt(&num) == nil {
		return nil, fmt.Errorf("invalid public address: not a point on the curve")
	}
	if x.IsZero() && sign == 1 {
		return nil, fmt.Errorf("invalid public address: non-canonical encoding of x = 0")
	}
	xBytes := x.Bytes()
	if xBytes[len(xBytes)-1]&1 != sign {
		x.Neg(&x)
	}

	point := twistededwards.PointAffine{X: x, Y: y}
	if !point.IsOnCurve() {
		return nil, fmt.Errorf("invalid public address: not a point on the curve")
	}
	var q twistededwards.PointAffine
	q.ScalarMultiplication(&point, &curve.Order)
	if !q.X.IsZero() || !q.Y.IsOne() {
		return nil, fmt.Errorf("invalid public address: point is not in the prime order subgroup")
	}
	return &point, nil
}
