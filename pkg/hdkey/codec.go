package hdkey

import (
	"encoding/hex"
	"fmt"

	"github.com/smallyu/go-hdpub/internal/crypto/curves"
)

// ParsePublicKey checks that b is a 33-byte compressed key with a 0x02 or
// 0x03 prefix (else ErrMalformedKey) whose x-coordinate lies on the curve
// (else ErrInvalidPoint).
func ParsePublicKey(b []byte) (CompressedPublicKey, error) {
	var k CompressedPublicKey
	if _, err := curves.Decompress(b); err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// ParsePublicKeyHex is ParsePublicKey for hex text in either case.
func ParsePublicKeyHex(s string) (CompressedPublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return CompressedPublicKey{}, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	return ParsePublicKey(b)
}

// ParseChainCode copies a 32-byte chain code.
func ParseChainCode(b []byte) (ChainCode, error) {
	var cc ChainCode
	if len(b) != ChainCodeLen {
		return cc, ErrInvalidChainCode
	}
	copy(cc[:], b)
	return cc, nil
}

// ParseChainCodeHex is ParseChainCode for hex text in either case.
func ParseChainCodeHex(s string) (ChainCode, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ChainCode{}, fmt.Errorf("%w: %v", ErrInvalidChainCode, err)
	}
	return ParseChainCode(b)
}

// ParseKeyNodeHex builds a KeyNode from hex-encoded public key and chain
// code.
func ParseKeyNodeHex(pubHex, ccHex string) (KeyNode, error) {
	pub, err := ParsePublicKeyHex(pubHex)
	if err != nil {
		return KeyNode{}, err
	}
	cc, err := ParseChainCodeHex(ccHex)
	if err != nil {
		return KeyNode{}, err
	}
	return KeyNode{PublicKey: pub, ChainCode: cc}, nil
}
