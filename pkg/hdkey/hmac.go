package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
)

// Hmac512 computes HMAC-SHA512(key, message).
func Hmac512(key, message []byte) [64]byte {
	var out [64]byte
	mac := hmac.New(sha512.New, key)
	mac.Write(message)
	copy(out[:], mac.Sum(nil))
	return out
}

// splitDigest splits I into IL, the tweak candidate, and IR, the child
// chain code.
func splitDigest(i [64]byte) (il [32]byte, ir ChainCode) {
	copy(il[:], i[:32])
	copy(ir[:], i[32:])
	return il, ir
}
