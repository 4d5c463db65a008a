package curves

import "math/big"

// scalarBits is the fixed ladder length; n < 2^256.
const scalarBits = 256

// ScalarBaseMultLadder returns k·G using a Montgomery ladder that performs
// one addition and one doubling for each of the 256 bit positions, so the
// sequence of group operations does not depend on the value of k. The
// underlying math/big arithmetic is still variable time.
func ScalarBaseMultLadder(k *big.Int) *Point {
	return Generator().scalarMultLadder(k)
}

func (p *Point) scalarMultLadder(k *big.Int) *Point {
	e := new(big.Int).Mod(k, orderN)
	r0, r1 := Infinity(), p.clone()
	for i := scalarBits - 1; i >= 0; i-- {
		bit := e.Bit(i)
		r0, r1 = condSwap(r0, r1, bit)
		r1 = r0.Add(r1)
		r0 = r0.Double()
		r0, r1 = condSwap(r0, r1, bit)
	}
	return r0
}

// condSwap swaps a and b when bit is 1.
func condSwap(a, b *Point, bit uint) (*Point, *Point) {
	pair := [2]*Point{a, b}
	return pair[bit], pair[1-bit]
}
