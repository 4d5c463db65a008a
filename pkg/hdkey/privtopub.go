package hdkey

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/smallyu/go-hdpub/internal/crypto/curves"
)

// PrivToPub returns the compressed public key of a 32-byte big-endian
// private key. Zero and values not below the group order fail with
// ErrInvalidPrivateKey.
func PrivToPub(priv []byte) (CompressedPublicKey, error) {
	var pub CompressedPublicKey
	if len(priv) != PrivateKeyLen {
		return pub, ErrInvalidPrivateKey
	}

	// 1. Range check without branching on the key bytes.
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(priv)
	zero := s.IsZero()
	s.Zero()
	if overflow || zero {
		return pub, ErrInvalidPrivateKey
	}

	// 2. K = k·G on the fixed-length ladder.
	k := new(big.Int).SetBytes(priv)
	enc, err := curves.Compress(curves.ScalarBaseMultLadder(k))
	k.SetInt64(0)
	if err != nil {
		return pub, err
	}

	copy(pub[:], enc)
	return pub, nil
}
