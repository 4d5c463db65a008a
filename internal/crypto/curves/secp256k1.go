package curves

import "math/big"

// secp256k1 domain parameters: y² = x³ + 7 over F_p, a = 0.
var (
	fieldP = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	orderN = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	baseGx = mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	baseGy = mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: bad constant " + s)
	}
	return v
}

// FieldPrime returns a copy of the secp256k1 field prime p.
func FieldPrime() *big.Int {
	return new(big.Int).Set(fieldP)
}

// Order returns a copy of the secp256k1 group order n.
func Order() *big.Int {
	return new(big.Int).Set(orderN)
}
