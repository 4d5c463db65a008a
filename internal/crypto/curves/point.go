package curves

import (
	"errors"
	"math/big"
)

// Point is an affine secp256k1 point or the point at infinity.
// The zero value is not valid; use Infinity, Generator or NewPoint.
type Point struct {
	x, y *big.Int
	inf  bool
}

// Infinity returns the group identity.
func Infinity() *Point {
	return &Point{inf: true}
}

// Generator returns the base point G.
func Generator() *Point {
	return &Point{x: new(big.Int).Set(baseGx), y: new(big.Int).Set(baseGy)}
}

// NewPoint builds a point from affine coordinates, rejecting anything
// outside [0, p) or off the curve.
func NewPoint(x, y *big.Int) (*Point, error) {
	if x == nil || y == nil {
		return nil, errors.New("curves: nil coordinate")
	}
	if x.Sign() < 0 || x.Cmp(fieldP) >= 0 || y.Sign() < 0 || y.Cmp(fieldP) >= 0 {
		return nil, ErrInvalidPoint
	}
	p := &Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
	if !p.IsOnCurve() {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// X returns a copy of the x-coordinate, or nil for infinity.
func (p *Point) X() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate, or nil for infinity.
func (p *Point) Y() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// IsInfinity reports whether p is the identity.
func (p *Point) IsInfinity() bool {
	return p.inf
}

// IsOnCurve checks y² = x³ + 7 (mod p). Infinity is a group member.
func (p *Point) IsOnCurve() bool {
	if p.inf {
		return true
	}
	return fieldSquare(p.y).Cmp(curveRHS(p.x)) == 0
}

// Equal reports whether both points are the same group element.
func (p *Point) Equal(q *Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Neg returns -p.
func (p *Point) Neg() *Point {
	if p.inf {
		return Infinity()
	}
	return &Point{x: new(big.Int).Set(p.x), y: fieldNeg(p.y)}
}

// Add returns p + q under the chord-and-tangent law.
func (p *Point) Add(q *Point) *Point {
	switch {
	case p.inf:
		return q.clone()
	case q.inf:
		return p.clone()
	}

	if p.x.Cmp(q.x) == 0 {
		// Same x: either the same point or inverses.
		if p.y.Cmp(q.y) == 0 {
			return p.Double()
		}
		return Infinity()
	}

	// λ = (y2 - y1) / (x2 - x1)
	lambda := fieldMul(fieldSub(q.y, p.y), fieldInv(fieldSub(q.x, p.x)))
	return p.chord(q, lambda)
}

// Double returns 2p.
func (p *Point) Double() *Point {
	// A point with y = 0 is its own inverse. secp256k1 has no such point
	// since x³ + 7 = 0 has no root mod p, but keep the group law total.
	if p.inf || p.y.Sign() == 0 {
		return Infinity()
	}

	// λ = 3x² / 2y
	num := fieldMul(big.NewInt(3), fieldSquare(p.x))
	den := fieldInv(fieldAdd(p.y, p.y))
	return p.chord(p, fieldMul(num, den))
}

// chord finishes an addition once the slope λ is known:
// x3 = λ² - x1 - x2, y3 = λ(x1 - x3) - y1.
func (p *Point) chord(q *Point, lambda *big.Int) *Point {
	x3 := fieldSub(fieldSub(fieldSquare(lambda), p.x), q.x)
	y3 := fieldSub(fieldMul(lambda, fieldSub(p.x, x3)), p.y)
	return &Point{x: x3, y: y3}
}

// ScalarMult returns k·p by left-to-right double-and-add. k is reduced
// mod n first, so k ≡ 0 yields infinity. Not constant time; use
// ScalarBaseMultLadder for secret scalars.
func (p *Point) ScalarMult(k *big.Int) *Point {
	e := new(big.Int).Mod(k, orderN)
	r := Infinity()
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if e.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// ScalarBaseMult returns k·G.
func ScalarBaseMult(k *big.Int) *Point {
	return Generator().ScalarMult(k)
}

func (p *Point) clone() *Point {
	if p.inf {
		return Infinity()
	}
	return &Point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y)}
}
