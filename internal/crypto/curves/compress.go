package curves

import (
	"errors"
	"math/big"
)

const (
	// CompressedLen is the size of a SEC1 compressed secp256k1 point.
	CompressedLen = 33

	prefixEven byte = 0x02
	prefixOdd  byte = 0x03
)

var (
	ErrMalformedKey    = errors.New("malformed compressed public key")
	ErrInvalidPoint    = errors.New("point is not on the curve")
	ErrPointAtInfinity = errors.New("point at infinity has no compressed encoding")
)

// Compress encodes p as prefix || x, where prefix is 0x02 for even y and
// 0x03 for odd y.
func Compress(p *Point) ([]byte, error) {
	if p.IsInfinity() {
		return nil, ErrPointAtInfinity
	}
	out := make([]byte, CompressedLen)
	out[0] = prefixEven
	if p.y.Bit(0) == 1 {
		out[0] = prefixOdd
	}
	p.x.FillBytes(out[1:])
	return out, nil
}

// Decompress recovers the point encoded by Compress. Inputs of the wrong
// length or with an unknown prefix fail with ErrMalformedKey; an x with no
// matching y fails with ErrInvalidPoint.
func Decompress(b []byte) (*Point, error) {
	if len(b) != CompressedLen || (b[0] != prefixEven && b[0] != prefixOdd) {
		return nil, ErrMalformedKey
	}

	x := new(big.Int).SetBytes(b[1:])
	if x.Cmp(fieldP) >= 0 {
		return nil, ErrInvalidPoint
	}

	// y² = x³ + 7; p ≡ 3 (mod 4) gives y = (x³ + 7)^((p+1)/4).
	y, ok := fieldSqrt(curveRHS(x))
	if !ok {
		return nil, ErrInvalidPoint
	}
	if y.Bit(0) != uint(b[0]&1) {
		y = fieldNeg(y)
	}

	return NewPoint(x, y)
}
