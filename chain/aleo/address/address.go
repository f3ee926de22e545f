package address

import (
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
)

const (
	// Human readable part of every account address
	Prefix = "aleo"
	// Length of a bech32m encoded account address
	Length = 63
	// Size of the encoded x-coordinate
	DataSize = 32
)

// Decode parses a bech32m account address and recovers the account's public
// key, a point in the prime order subgroup of the Edwards BLS12-377 curve.
// The address only encodes the x-coordinate; y is recovered from the curve equation.
func Decode(address string) (*twistededwards.PointAffine, error) {
	if len(address) != Length {
		return nil, fmt.Errorf("invalid account address length: found %d, expected %d", len(address), Length)
	}
	hrp, data, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return nil, fmt.Errorf("failed to decode address: %v", err)
	}
	if hrp != Prefix {
		return nil, fmt.Errorf("failed to decode address: '%s' is an invalid prefix", hrp)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to decode address: data field is empty")
	}
	if version != bech32.VersionM {
		return nil, fmt.Errorf("invalid address: expected bech32m encoding")
	}
	bz, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("failed to decode address: %v", err)
	}
	if len(bz) != DataSize {
		return nil, fmt.Errorf("invalid address: expected %d bytes, got %d", DataSize, len(bz))
	}
	return FromXCoordinate(bz)
}

// FromXCoordinate recovers the subgroup point with the given little-endian x-coordinate.
func FromXCoordinate(xLE []byte) (*twistededwards.PointAffine, error) {
	xBE := slices.Clone(xLE)
	slices.Reverse(xBE)
	var x fr.Element
	if err := x.SetBytesCanonical(xBE); err != nil {
		return nil, fmt.Errorf("invalid address: x-coordinate is not a field element")
	}

	curve := twistededwards.GetEdwardsCurve()

	// a*x^2 + y^2 = 1 + d*x^2*y^2  =>  y^2 = (1 - a*x^2) / (1 - d*x^2)
	var x2, num, den, one fr.Element
	one.SetOne()
	x2.Square(&x)
	num.Mul(&curve.A, &x2)
	num.Sub(&one, &num)
	den.Mul(&curve.D, &x2)
	den.Sub(&one, &den)
	if den.IsZero() {
		return nil, fmt.Errorf("invalid address: x-coordinate is not on the curve")
	}
	den.Inverse(&den)
	num.Mul(&num, &den)

	var y fr.Element
	if y.Sqrt(&num) == nil {
		return nil, fmt.Errorf("invalid address: x-coordinate is not on the curve")
	}

	var negY fr.Element
	negY.Neg(&y)
	for _, candidate := range []fr.Element{y, negY} {
		point := twistededwards.PointAffine{X: x, Y: candidate}
		if inSubgroup(&point, &curve) {
			return &point, nil
		}
	}
	return nil, fmt.Errorf("invalid address: failed to recover an affine group from an x-coordinate of %s", x.String())
}

func inSubgroup(p *twistededwards.PointAffine, curve *twistededwards.CurveParams) bool {
	if !p.IsOnCurve() {
		return false
	}
	var q twistededwards.PointAffine
	q.ScalarMultiplication(p, &curve.Order)
	return q.X.IsZero() && q.Y.IsOne()
}
