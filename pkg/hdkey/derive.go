package hdkey

import (
	"encoding/binary"

	"github.com/smallyu/go-hdpub/internal/crypto/curves"
)

// childIndexLen is ser32(i), the big-endian child index appended to the
// parent key before hashing.
const childIndexLen = 4

var secp256k1Curve curves.Curve = curves.Secp256k1{}

// DeriveNonHardenedChild derives the child public key and chain code at
// index from a parent public key and chain code.
//
// index must be below HardenedKeyStart. ErrInvalidTweak and
// ErrInvalidChildKey mark the rare indices that have no valid child; the
// caller decides whether to continue with index+1.
func DeriveNonHardenedChild(parent CompressedPublicKey, cc ChainCode, index uint32) (CompressedPublicKey, ChainCode, error) {
	child, childCC, err := deriveChild(secp256k1Curve, parent[:], cc, index)
	if err != nil {
		return CompressedPublicKey{}, ChainCode{}, err
	}

	var out CompressedPublicKey
	copy(out[:], child)
	return out, childCC, nil
}

// deriveChild implements CKDpub for any registered curve.
func deriveChild(c curves.Curve, pub []byte, cc ChainCode, index uint32) ([]byte, ChainCode, error) {
	// 1. Public parents only have non-hardened children.
	if index >= HardenedKeyStart {
		log.Debugf("Rejecting hardened index %d on %s", index, c.Name())
		return nil, ChainCode{}, ErrUnsupportedHardenedIndex
	}
	if len(pub) != c.PublicKeyLen() {
		return nil, ChainCode{}, ErrMalformedKey
	}

	// 2. I = HMAC-SHA512(Key = cpar, Data = serP(Kpar) || ser32(i))
	data := make([]byte, len(pub)+childIndexLen)
	copy(data, pub)
	binary.BigEndian.PutUint32(data[len(pub):], index)
	il, ir := splitDigest(Hmac512(cc[:], data))

	// 3. Ki = Kpar + parse256(IL)·G, cci = IR
	child, err := c.TweakAdd(pub, il[:])
	if err != nil {
		log.Debugf("No %s child at index %d: %v", c.Name(), index, err)
		return nil, ChainCode{}, err
	}

	log.Tracef("Derived %s child %x at index %d", c.Name(), child, index)
	return child, ir, nil
}
