package curves

import (
	"math/big"

	"filippo.io/edwards25519"
)

// Ed25519PointLen is the size of an encoded Ed25519 point.
const Ed25519PointLen = 32

// Ed25519Point wraps an edwards25519 group element.
type Ed25519Point struct {
	p *edwards25519.Point
}

// ed25519Order is l = 2^252 + 27742317777372353535851937790883648493.
var ed25519Order = mustHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")

// Ed25519Order returns a copy of the Ed25519 group order l.
func Ed25519Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

// DecodeEd25519Point parses a 32-byte point encoding.
func DecodeEd25519Point(b []byte) (*Ed25519Point, error) {
	if len(b) != Ed25519PointLen {
		return nil, ErrMalformedKey
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return &Ed25519Point{p: p}, nil
}

// Ed25519BasePoint returns the generator B.
func Ed25519BasePoint() *Ed25519Point {
	return &Ed25519Point{p: edwards25519.NewGeneratorPoint()}
}

// Bytes returns the canonical 32-byte encoding.
func (p *Ed25519Point) Bytes() []byte {
	return p.p.Bytes()
}

// IsIdentity reports whether p is the neutral element.
func (p *Ed25519Point) IsIdentity() bool {
	return p.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Add returns p + q.
func (p *Ed25519Point) Add(q *Ed25519Point) *Ed25519Point {
	return &Ed25519Point{p: edwards25519.NewIdentityPoint().Add(p.p, q.p)}
}

// Ed25519ScalarFromLittleEndian reads b as a little-endian integer, the
// native Ed25519 scalar byte order, and reduces it mod l.
func Ed25519ScalarFromLittleEndian(b []byte) (*edwards25519.Scalar, error) {
	var wide [64]byte
	copy(wide[:32], b)
	return edwards25519.NewScalar().SetUniformBytes(wide[:])
}

// Ed25519ScalarBaseMult returns s·B.
func Ed25519ScalarBaseMult(s *edwards25519.Scalar) *Ed25519Point {
	return &Ed25519Point{p: edwards25519.NewIdentityPoint().ScalarBaseMult(s)}
}
