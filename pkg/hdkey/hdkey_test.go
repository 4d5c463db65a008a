package hdkey

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/smallyu/go-hdpub/internal/crypto/curves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHmac512RFC4231(t *testing.T) {
	// RFC 4231 test case 1.
	key := bytes.Repeat([]byte{0x0b}, 20)
	got := Hmac512(key, []byte("Hi There"))
	assert.Equal(t,
		"87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde"+
			"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854",
		hex.EncodeToString(got[:]))
}

func TestNewDeriver(t *testing.T) {
	d, err := NewDeriver(nil)
	require.NoError(t, err)
	assert.Equal(t, "secp256k1", d.CurveName())

	d, err = NewDeriver(&Params{Curve: "ed25519"})
	require.NoError(t, err)
	assert.Equal(t, "ed25519", d.CurveName())

	_, err = NewDeriver(&Params{Curve: "bn254"})
	require.ErrorIs(t, err, curves.ErrUnknownCurve)
}

func TestDeriverMatchesTypedAPI(t *testing.T) {
	d, err := NewDeriver(&Params{Curve: "secp256k1"})
	require.NoError(t, err)
	n := vectorNode(t)

	pub, err := d.ParsePublicKey(n.PublicKey[:])
	require.NoError(t, err)

	child, cc, err := d.Child(pub, n.ChainCode, 0)
	require.NoError(t, err)
	want, err := n.Child(0)
	require.NoError(t, err)
	assert.Equal(t, want.PublicKey[:], child)
	assert.Equal(t, want.ChainCode, cc)

	leaf, leafCC, err := d.Path(pub, n.ChainCode, Path{0, 1, 2})
	require.NoError(t, err)
	wantLeaf, err := n.DerivePath(Path{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, wantLeaf.PublicKey[:], leaf)
	assert.Equal(t, wantLeaf.ChainCode, leafCC)

	_, _, err = d.Path(pub[:10], n.ChainCode, nil)
	require.ErrorIs(t, err, ErrMalformedKey)
}

func TestDeriverEd25519(t *testing.T) {
	d, err := NewDeriver(&Params{Curve: "ed25519"})
	require.NoError(t, err)

	base, err := hex.DecodeString(ed25519BasePoint)
	require.NoError(t, err)
	cc, err := ParseChainCodeHex(vectorChainCode)
	require.NoError(t, err)

	leaf, _, err := d.Path(base, cc, Path{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "86193cd3b45a977c53dc3f2cbf566470d6170ce246487d5147b6898b921284a8", hex.EncodeToString(leaf))

	_, err = d.ParsePublicKey(make([]byte, 33))
	require.ErrorIs(t, err, ErrMalformedKey)
}

// Every entry point rejects the Ed25519 identity as a parent.
func TestEd25519IdentityParentRejected(t *testing.T) {
	var identity Ed25519PublicKey
	identity[0] = 1

	d, err := NewDeriver(&Params{Curve: "ed25519"})
	require.NoError(t, err)

	_, _, err = d.Child(identity[:], ChainCode{}, 0)
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, _, err = d.Path(identity[:], ChainCode{}, Path{0})
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, _, err = DeriveEd25519NonHardenedChild(identity, ChainCode{}, 0)
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, err = ParseEd25519PublicKey(identity[:])
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestDerivationLogging(t *testing.T) {
	var buf bytes.Buffer
	backend := btclog.NewBackend(&buf)
	logger := backend.Logger("HDKY")
	logger.SetLevel(btclog.LevelTrace)
	UseLogger(logger)
	defer DisableLog()

	n := vectorNode(t)
	_, err := n.Child(0)
	require.NoError(t, err)
	_, err = n.Child(HardenedKeyStart)
	require.Error(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "Derived secp256k1 child"), out)
	assert.True(t, strings.Contains(out, "Rejecting hardened index"), out)
	assert.False(t, strings.Contains(out, n.ChainCode.String()), "chain code must not be logged")
}
