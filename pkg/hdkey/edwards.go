package hdkey

import (
	"encoding/hex"
	"fmt"

	"github.com/smallyu/go-hdpub/internal/crypto/curves"
)

// Ed25519PublicKeyLen is the size of an encoded Ed25519 public key.
const Ed25519PublicKeyLen = curves.Ed25519PointLen

// Ed25519PublicKey is a 32-byte Edwards point encoding.
type Ed25519PublicKey [Ed25519PublicKeyLen]byte

func (k Ed25519PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

var ed25519Curve curves.Curve = curves.Ed25519{}

// ParseEd25519PublicKey checks that b encodes a non-identity Ed25519
// point.
func ParseEd25519PublicKey(b []byte) (Ed25519PublicKey, error) {
	var k Ed25519PublicKey
	if err := ed25519Curve.ValidatePublicKey(b); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// ParseEd25519PublicKeyHex is ParseEd25519PublicKey for hex text.
func ParseEd25519PublicKeyHex(s string) (Ed25519PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Ed25519PublicKey{}, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	return ParseEd25519PublicKey(b)
}

// DeriveEd25519NonHardenedChild is the Edwards analogue of
// DeriveNonHardenedChild as used by threshold wallets: the HMAC input is
// the 32-byte parent point followed by ser32(index), IL is read
// little-endian and reduced mod l, and a zero tweak or identity child is
// rejected.
func DeriveEd25519NonHardenedChild(parent Ed25519PublicKey, cc ChainCode, index uint32) (Ed25519PublicKey, ChainCode, error) {
	child, childCC, err := deriveChild(ed25519Curve, parent[:], cc, index)
	if err != nil {
		return Ed25519PublicKey{}, ChainCode{}, err
	}

	var out Ed25519PublicKey
	copy(out[:], child)
	return out, childCC, nil
}
