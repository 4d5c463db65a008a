// Package hash256 computes Bitcoin's double SHA-256, SHA256(SHA256(data)).
//
// The digest is returned in hash order, not the byte-reversed order that
// Bitcoin uses to display transaction and block ids.
package hash256

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Size is the length of a digest in bytes.
const Size = chainhash.HashSize

// ErrInvalidHex is returned by SumHex for input that is not hex.
var ErrInvalidHex = errors.New("hash256: invalid hex input")

// Sum returns SHA256(SHA256(data)).
func Sum(data []byte) [Size]byte {
	return [Size]byte(chainhash.DoubleHashH(data))
}

// SumHex decodes s as hex (either case) and hashes the decoded bytes.
func SumHex(s string) ([Size]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return [Size]byte{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return Sum(b), nil
}

// SumString hashes the UTF-8 bytes of s. It never interprets s as hex.
func SumString(s string) [Size]byte {
	return Sum([]byte(s))
}
