package curves

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secpG = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestByName(t *testing.T) {
	c, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, "secp256k1", c.Name())
	assert.Equal(t, CompressedLen, c.PublicKeyLen())

	c, err = ByName("ed25519")
	require.NoError(t, err)
	assert.Equal(t, "ed25519", c.Name())
	assert.Equal(t, Ed25519PointLen, c.PublicKeyLen())

	_, err = ByName("p256")
	require.ErrorIs(t, err, ErrUnknownCurve)
}

func TestSecp256k1TweakAdd(t *testing.T) {
	c := Secp256k1{}
	g := mustDecodeHex(t, secpG)

	// G + 1·G = 2G
	one := make([]byte, 32)
	one[31] = 1
	got, err := c.TweakAdd(g, one)
	require.NoError(t, err)
	assert.Equal(t, "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5", hex.EncodeToString(got))

	// A zero tweak leaves the parent unchanged.
	got, err = c.TweakAdd(g, make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, g, got)
}

func TestSecp256k1TweakAddRejectsOverflow(t *testing.T) {
	c := Secp256k1{}
	g := mustDecodeHex(t, secpG)

	n := make([]byte, 32)
	Order().FillBytes(n)
	_, err := c.TweakAdd(g, n)
	require.ErrorIs(t, err, ErrInvalidTweak)

	_, err = c.TweakAdd(g, bytes.Repeat([]byte{0xff}, 32))
	require.ErrorIs(t, err, ErrInvalidTweak)
}

func TestSecp256k1TweakAddRejectsInfinity(t *testing.T) {
	c := Secp256k1{}

	// Parent -G with tweak 1 lands on the identity.
	negG := mustDecodeHex(t, "03"+secpG[2:])
	one := make([]byte, 32)
	one[31] = 1
	_, err := c.TweakAdd(negG, one)
	require.ErrorIs(t, err, ErrInvalidChildKey)

	// Parent k·G with tweak n-k does the same.
	k := big.NewInt(123456789)
	parent, err := Compress(ScalarBaseMult(k))
	require.NoError(t, err)
	tweak := make([]byte, 32)
	new(big.Int).Sub(Order(), k).FillBytes(tweak)
	_, err = c.TweakAdd(parent, tweak)
	require.ErrorIs(t, err, ErrInvalidChildKey)
}

func TestSecp256k1TweakAddBadParent(t *testing.T) {
	c := Secp256k1{}
	one := make([]byte, 32)
	one[31] = 1

	_, err := c.TweakAdd(mustDecodeHex(t, "04"+secpG[2:]), one)
	require.ErrorIs(t, err, ErrMalformedKey)

	_, err = c.TweakAdd(mustDecodeHex(t, "020000000000000000000000000000000000000000000000000000000000000005"), one)
	require.ErrorIs(t, err, ErrInvalidPoint)

	require.ErrorIs(t, c.ValidatePublicKey([]byte{0x02}), ErrMalformedKey)
	require.NoError(t, c.ValidatePublicKey(mustDecodeHex(t, secpG)))
}

func TestEd25519BasePointEncoding(t *testing.T) {
	b := Ed25519BasePoint()
	assert.Equal(t, "5866666666666666666666666666666666666666666666666666666666666666", hex.EncodeToString(b.Bytes()))

	two := b.Add(b)
	assert.Equal(t, "c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022", hex.EncodeToString(two.Bytes()))

	back, err := DecodeEd25519Point(two.Bytes())
	require.NoError(t, err)
	assert.Equal(t, two.Bytes(), back.Bytes())
	assert.False(t, back.IsIdentity())
}

func TestEd25519ScalarFromLittleEndian(t *testing.T) {
	le := make([]byte, 32)
	le[0] = 2
	s, err := Ed25519ScalarFromLittleEndian(le)
	require.NoError(t, err)
	assert.Equal(t, Ed25519BasePoint().Add(Ed25519BasePoint()).Bytes(), Ed25519ScalarBaseMult(s).Bytes())

	// l itself reduces to zero.
	l := Ed25519Order().Bytes()
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
	s, err = Ed25519ScalarFromLittleEndian(l)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Equal(edwards25519.NewScalar()))
}

func TestEd25519TweakAdd(t *testing.T) {
	c := Ed25519{}
	base := Ed25519BasePoint().Bytes()

	one := make([]byte, 32)
	one[0] = 1
	got, err := c.TweakAdd(base, one)
	require.NoError(t, err)
	assert.Equal(t, "c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022", hex.EncodeToString(got))

	_, err = c.TweakAdd(base, make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidTweak)

	_, err = c.TweakAdd(base[:31], one)
	require.ErrorIs(t, err, ErrMalformedKey)

	// -B + 1·B is the identity.
	negB := append([]byte(nil), base...)
	negB[31] |= 0x80
	_, err = c.TweakAdd(negB, one)
	require.ErrorIs(t, err, ErrInvalidChildKey)

	identity := edwards25519.NewIdentityPoint().Bytes()
	require.ErrorIs(t, c.ValidatePublicKey(identity), ErrInvalidPoint)
	require.NoError(t, c.ValidatePublicKey(base))

	// The identity is not a usable parent either.
	_, err = c.TweakAdd(identity, one)
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestEd25519Order(t *testing.T) {
	c, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	require.True(t, ok)
	want := new(big.Int).Lsh(big.NewInt(1), 252)
	want.Add(want, c)
	assert.Equal(t, 0, want.Cmp(Ed25519Order()))
	assert.Equal(t, "7237005577332262213973186563042994240857116359379907606001950938285454250989", Ed25519Order().String())

	// Callers get a copy.
	Ed25519Order().SetInt64(0)
	assert.Equal(t, 253, Ed25519Order().BitLen())
}
