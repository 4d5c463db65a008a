package curves

import "math/big"

// Field arithmetic over F_p for secp256k1. Every helper returns a fresh,
// fully reduced value in [0, p) and never mutates its inputs.

var (
	// sqrtExp is (p+1)/4. Since p ≡ 3 (mod 4), a^sqrtExp is a square root
	// of a whenever one exists.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(fieldP, big.NewInt(1)), 2)

	// invExp is p-2, used for inversion by Fermat's little theorem.
	invExp = new(big.Int).Sub(fieldP, big.NewInt(2))

	curveB = big.NewInt(7)
)

func fieldReduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, fieldP)
}

func fieldAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, fieldP)
}

func fieldSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, fieldP)
}

func fieldMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, fieldP)
}

func fieldSquare(a *big.Int) *big.Int {
	return fieldMul(a, a)
}

func fieldNeg(a *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return r.Mod(r, fieldP)
}

// fieldInv returns a^-1 mod p. The caller must not pass zero.
func fieldInv(a *big.Int) *big.Int {
	return new(big.Int).Exp(a, invExp, fieldP)
}

// fieldSqrt returns a square root of a and reports whether a is a
// quadratic residue.
func fieldSqrt(a *big.Int) (*big.Int, bool) {
	r := new(big.Int).Exp(a, sqrtExp, fieldP)
	if fieldSquare(r).Cmp(fieldReduce(a)) != 0 {
		return nil, false
	}
	return r, true
}

// curveRHS computes x³ + 7 mod p.
func curveRHS(x *big.Int) *big.Int {
	x3 := fieldMul(fieldSquare(x), x)
	return fieldAdd(x3, curveB)
}
