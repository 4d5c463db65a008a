package curves

import (
	"errors"
	"fmt"
	"math/big"

	"filippo.io/edwards25519"
)

var (
	ErrInvalidTweak    = errors.New("derived tweak is not a valid scalar")
	ErrInvalidChildKey = errors.New("derived child key is the point at infinity")
	ErrUnknownCurve    = errors.New("unknown curve")
)

// Curve defines the group operations a public child derivation needs.
type Curve interface {
	// Name returns the registry name of the curve.
	Name() string

	// PublicKeyLen returns the size of an encoded public key.
	PublicKeyLen() int

	// ValidatePublicKey checks that pub decodes to a usable group element.
	ValidatePublicKey(pub []byte) error

	// TweakAdd interprets il as a scalar t under the curve's rules and
	// returns the encoding of pub + t·G.
	TweakAdd(pub, il []byte) ([]byte, error)
}

// Secp256k1 implements Curve with BIP32 rules: il is a big-endian integer
// that must be below n, and the child must not be the point at infinity.
type Secp256k1 struct{}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) PublicKeyLen() int {
	return CompressedLen
}

func (Secp256k1) ValidatePublicKey(pub []byte) error {
	_, err := Decompress(pub)
	return err
}

func (Secp256k1) TweakAdd(pub, il []byte) ([]byte, error) {
	// 1. The tweak must be a canonical scalar.
	tweak := new(big.Int).SetBytes(il)
	if tweak.Cmp(orderN) >= 0 {
		return nil, ErrInvalidTweak
	}

	// 2. Recover the parent point.
	parent, err := Decompress(pub)
	if err != nil {
		return nil, err
	}

	// 3. child = parent + tweak·G
	child := parent.Add(ScalarBaseMult(tweak))
	if child.IsInfinity() {
		return nil, ErrInvalidChildKey
	}

	return Compress(child)
}

// Ed25519 implements Curve for Edwards keys: il is read little-endian and
// reduced mod l, and a zero tweak or identity child is rejected.
type Ed25519 struct{}

func (Ed25519) Name() string {
	return "ed25519"
}

func (Ed25519) PublicKeyLen() int {
	return Ed25519PointLen
}

func (Ed25519) ValidatePublicKey(pub []byte) error {
	p, err := DecodeEd25519Point(pub)
	if err != nil {
		return err
	}
	if p.IsIdentity() {
		return ErrInvalidPoint
	}
	return nil
}

func (Ed25519) TweakAdd(pub, il []byte) ([]byte, error) {
	tweak, err := Ed25519ScalarFromLittleEndian(il)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTweak, err)
	}
	if tweak.Equal(edwards25519.NewScalar()) == 1 {
		return nil, ErrInvalidTweak
	}

	parent, err := DecodeEd25519Point(pub)
	if err != nil {
		return nil, err
	}
	if parent.IsIdentity() {
		return nil, ErrInvalidPoint
	}

	child := parent.Add(Ed25519ScalarBaseMult(tweak))
	if child.IsIdentity() {
		return nil, ErrInvalidChildKey
	}
	return child.Bytes(), nil
}

// ByName returns the curve registered under name. The empty name selects
// secp256k1.
func ByName(name string) (Curve, error) {
	switch name {
	case "", "secp256k1":
		return Secp256k1{}, nil
	case "ed25519":
		return Ed25519{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
}
