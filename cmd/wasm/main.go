//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-hdpub/pkg/hash256"
	"github.com/smallyu/go-hdpub/pkg/hdkey"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go HDPub WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoHDPub", map[string]interface{}{
		"Derive":     js.FuncOf(Derive),
		"DerivePath": js.FuncOf(DerivePath),
		"PrivToPub":  js.FuncOf(PrivToPub),
		"Hash256":    js.FuncOf(Hash256),
	})

	<-c
}

// Derive derives one secp256k1 child.
// Arguments:
// 0: hex public key
// 1: hex chain code
// 2: child index (number)
// Returns:
// JSON string {publicKey, chainCode} or an "error: ..." string
func Derive(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (pubkey, chaincode, index)"
	}

	node, err := hdkey.ParseKeyNodeHex(args[0].String(), args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	// JS numbers are float64; anything outside uint32 is rejected here
	// rather than truncated.
	index := args[2].Float()
	if index < 0 || index > 0xffffffff || index != float64(uint32(index)) {
		return "error: index must be an integer in [0, 2^32)"
	}

	child, err := node.Child(uint32(index))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return marshalResult(map[string]interface{}{
		"publicKey": child.PublicKey.String(),
		"chainCode": child.ChainCode.String(),
	})
}

// DerivePath derives along a path on either curve.
// Arguments:
// 0: JSON string of parameters
// Returns:
// JSON string {curve, path, publicKey, chainCode} or an "error: ..." string
func DerivePath(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type ParamsInput struct {
		Curve     string `json:"curve"`
		PublicKey string `json:"publicKey"`
		ChainCode string `json:"chainCode"`
		Path      string `json:"path"`
	}

	var input ParamsInput
	err := json.Unmarshal([]byte(args[0].String()), &input)
	if err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	deriver, err := hdkey.NewDeriver(&hdkey.Params{Curve: input.Curve})
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	path, err := hdkey.ParsePath(input.Path)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := hex.DecodeString(input.PublicKey)
	if err != nil {
		return fmt.Sprintf("error: %v: %v", hdkey.ErrMalformedKey, err)
	}
	cc, err := hdkey.ParseChainCodeHex(input.ChainCode)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	child, childCC, err := deriver.Path(pub, cc, path)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return marshalResult(map[string]interface{}{
		"curve":     deriver.CurveName(),
		"path":      path.String(),
		"publicKey": hex.EncodeToString(child),
		"chainCode": childCC.String(),
	})
}

// PrivToPub returns the compressed public key of a hex private key.
// Arguments:
// 0: hex private key
// Returns:
// JSON string {publicKey} or an "error: ..." string
func PrivToPub(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (privkey)"
	}

	priv, err := hex.DecodeString(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v: %v", hdkey.ErrInvalidPrivateKey, err)
	}
	defer clear(priv)

	pub, err := hdkey.PrivToPub(priv)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return marshalResult(map[string]interface{}{
		"publicKey": pub.String(),
	})
}

// Hash256 double-SHA256 hashes hex encoded bytes.
// Arguments:
// 0: hex input
// Returns:
// JSON string {hash} or an "error: ..." string
func Hash256(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (hexData)"
	}

	digest, err := hash256.SumHex(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return marshalResult(map[string]interface{}{
		"hash": hex.EncodeToString(digest[:]),
	})
}

// Helpers

func marshalResult(res map[string]interface{}) string {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Sprintf("error: marshal result failed: %v", err)
	}
	return string(b)
}
