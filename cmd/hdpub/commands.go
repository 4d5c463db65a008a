package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/smallyu/go-hdpub/pkg/hash256"
	"github.com/smallyu/go-hdpub/pkg/hdkey"
	"github.com/urfave/cli"
)

var (
	pubKeyFlag = cli.StringFlag{
		Name:  "pubkey",
		Usage: "the hex encoded parent public key",
	}
	chainCodeFlag = cli.StringFlag{
		Name:  "chaincode",
		Usage: "the hex encoded 32-byte parent chain code",
	}
	curveFlag = cli.StringFlag{
		Name:  "curve",
		Value: "secp256k1",
		Usage: "the curve of the key, secp256k1 or ed25519",
	}
)

// derivedKey is the JSON form of a derived child.
type derivedKey struct {
	Curve     string `json:"curve"`
	Path      string `json:"path"`
	PublicKey string `json:"public_key"`
	ChainCode string `json:"chain_code"`
}

var deriveCommand = cli.Command{
	Name:  "derive",
	Usage: "Derive a single non-hardened child public key.",
	Flags: []cli.Flag{
		pubKeyFlag,
		chainCodeFlag,
		curveFlag,
		cli.Uint64Flag{
			Name:  "index",
			Usage: "the child index, below 2^31",
		},
	},
	Action: derive,
}

func derive(ctx *cli.Context) error {
	if !ctx.IsSet("pubkey") || !ctx.IsSet("chaincode") ||
		!ctx.IsSet("index") {

		return cli.ShowCommandHelp(ctx, "derive")
	}

	index := ctx.Uint64("index")
	if index > math.MaxUint32 {
		return fmt.Errorf("index %d out of range", index)
	}

	return runDerivation(ctx, hdkey.Path{uint32(index)})
}

var derivePathCommand = cli.Command{
	Name:  "derivepath",
	Usage: "Derive the public key at a path such as M/0/1/2.",
	Flags: []cli.Flag{
		pubKeyFlag,
		chainCodeFlag,
		curveFlag,
		cli.StringFlag{
			Name:  "path",
			Usage: "the slash separated non-hardened path",
		},
	},
	Action: derivePath,
}

func derivePath(ctx *cli.Context) error {
	if !ctx.IsSet("pubkey") || !ctx.IsSet("chaincode") ||
		!ctx.IsSet("path") {

		return cli.ShowCommandHelp(ctx, "derivepath")
	}

	path, err := hdkey.ParsePath(ctx.String("path"))
	if err != nil {
		return err
	}

	return runDerivation(ctx, path)
}

func runDerivation(ctx *cli.Context, path hdkey.Path) error {
	deriver, err := hdkey.NewDeriver(&hdkey.Params{
		Curve: ctx.String("curve"),
	})
	if err != nil {
		return err
	}

	pubBytes, err := hex.DecodeString(ctx.String("pubkey"))
	if err != nil {
		return fmt.Errorf("%w: %v", hdkey.ErrMalformedKey, err)
	}
	pub, err := deriver.ParsePublicKey(pubBytes)
	if err != nil {
		return fmt.Errorf("unable to parse public key: %w", err)
	}
	cc, err := hdkey.ParseChainCodeHex(ctx.String("chaincode"))
	if err != nil {
		return err
	}

	log.Debugf("Deriving %s on %s", path, deriver.CurveName())

	child, childCC, err := deriver.Path(pub, cc, path)
	if err != nil {
		if errors.Is(err, hdkey.ErrInvalidTweak) ||
			errors.Is(err, hdkey.ErrInvalidChildKey) {

			log.Warnf("No child at %s, the next index must be "+
				"used instead", path)
		}
		return err
	}

	return printJSON(ctx.App.Writer, derivedKey{
		Curve:     deriver.CurveName(),
		Path:      path.String(),
		PublicKey: hex.EncodeToString(child),
		ChainCode: childCC.String(),
	})
}

var privToPubCommand = cli.Command{
	Name:  "privtopub",
	Usage: "Compute the compressed public key of a private key.",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "privkey",
			Usage: "the hex encoded 32-byte private key",
		},
	},
	Action: privToPub,
}

func privToPub(ctx *cli.Context) error {
	if !ctx.IsSet("privkey") {
		return cli.ShowCommandHelp(ctx, "privtopub")
	}

	priv, err := hex.DecodeString(ctx.String("privkey"))
	if err != nil {
		return fmt.Errorf("%w: %v", hdkey.ErrInvalidPrivateKey, err)
	}
	defer clear(priv)

	pub, err := hdkey.PrivToPub(priv)
	if err != nil {
		return err
	}

	return printJSON(ctx.App.Writer, struct {
		PublicKey string `json:"public_key"`
	}{pub.String()})
}

var hash256Command = cli.Command{
	Name:      "hash256",
	Usage:     "Compute SHA256(SHA256(input)).",
	ArgsUsage: "input",
	Description: `
	Hashes the UTF-8 bytes of input. With --hex, input is decoded from
	hex first and the decoded bytes are hashed instead.`,
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "hex",
			Usage: "treat input as hex encoded bytes",
		},
	},
	Action: hashInput,
}

func hashInput(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "hash256")
	}
	input := ctx.Args().First()

	var digest [hash256.Size]byte
	if ctx.Bool("hex") {
		var err error
		digest, err = hash256.SumHex(input)
		if err != nil {
			return err
		}
	} else {
		digest = hash256.SumString(input)
	}

	return printJSON(ctx.App.Writer, struct {
		Hash string `json:"hash"`
	}{hex.EncodeToString(digest[:])})
}

func printJSON(w io.Writer, resp interface{}) error {
	b, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
