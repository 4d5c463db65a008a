// Package hdkey derives child public keys from a parent public key and
// chain code following the BIP32 public parent to public child rules.
//
// Every function is pure: identical inputs always give identical outputs,
// nothing is cached, and all exported functions are safe for concurrent
// use. The caller owns any bookkeeping of the key hierarchy.
package hdkey

import (
	"encoding/hex"

	"github.com/smallyu/go-hdpub/internal/crypto/curves"
)

const (
	// HardenedKeyStart is the first hardened child index. Indices at or
	// above it cannot be derived from a public key.
	HardenedKeyStart uint32 = 0x80000000

	// PublicKeyLen is the size of a compressed secp256k1 public key.
	PublicKeyLen = curves.CompressedLen

	// ChainCodeLen is the size of a chain code.
	ChainCodeLen = 32

	// PrivateKeyLen is the size of a raw secp256k1 private key.
	PrivateKeyLen = 32
)

// CompressedPublicKey is a SEC1 compressed secp256k1 point: a 0x02/0x03
// parity prefix followed by the big-endian x-coordinate.
type CompressedPublicKey [PublicKeyLen]byte

func (k CompressedPublicKey) String() string {
	return hex.EncodeToString(k[:])
}

// ChainCode is the 32-byte HMAC key carried alongside a public key.
type ChainCode [ChainCodeLen]byte

func (c ChainCode) String() string {
	return hex.EncodeToString(c[:])
}

// KeyNode is a public key together with its chain code.
type KeyNode struct {
	PublicKey CompressedPublicKey
	ChainCode ChainCode
}

// Child derives the non-hardened child at index.
func (n KeyNode) Child(index uint32) (KeyNode, error) {
	pub, cc, err := DeriveNonHardenedChild(n.PublicKey, n.ChainCode, index)
	if err != nil {
		return KeyNode{}, err
	}
	return KeyNode{PublicKey: pub, ChainCode: cc}, nil
}

// DerivePath walks path one index at a time. The first failing step is
// returned as a *DerivationError; no index is skipped.
func (n KeyNode) DerivePath(path Path) (KeyNode, error) {
	cur := n
	for depth, index := range path {
		next, err := cur.Child(index)
		if err != nil {
			return KeyNode{}, NewDerivationError(depth, index, err)
		}
		cur = next
	}
	return cur, nil
}

// Params holds the configuration for a Deriver.
type Params struct {
	Curve string // "secp256k1" (default) or "ed25519"
}

// Deriver runs public child derivation over the curve chosen in Params,
// working on encoded keys. It holds no mutable state.
type Deriver struct {
	curve curves.Curve
}

// NewDeriver returns a Deriver for params. A nil params selects
// secp256k1.
func NewDeriver(params *Params) (*Deriver, error) {
	name := ""
	if params != nil {
		name = params.Curve
	}
	c, err := curves.ByName(name)
	if err != nil {
		return nil, err
	}
	return &Deriver{curve: c}, nil
}

// CurveName returns the name of the curve in use.
func (d *Deriver) CurveName() string {
	return d.curve.Name()
}

// ParsePublicKey validates an encoded public key for the Deriver's curve
// and returns a copy of it.
func (d *Deriver) ParsePublicKey(b []byte) ([]byte, error) {
	if err := d.curve.ValidatePublicKey(b); err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// Child derives the non-hardened child of pub at index.
func (d *Deriver) Child(pub []byte, cc ChainCode, index uint32) ([]byte, ChainCode, error) {
	return deriveChild(d.curve, pub, cc, index)
}

// Path derives along path, reporting failures as *DerivationError.
func (d *Deriver) Path(pub []byte, cc ChainCode, path Path) ([]byte, ChainCode, error) {
	if err := d.curve.ValidatePublicKey(pub); err != nil {
		return nil, ChainCode{}, err
	}
	for depth, index := range path {
		var err error
		pub, cc, err = deriveChild(d.curve, pub, cc, index)
		if err != nil {
			return nil, ChainCode{}, NewDerivationError(depth, index, err)
		}
	}
	return append([]byte(nil), pub...), cc, nil
}
