package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/smallyu/go-hdpub/pkg/hdkey"
	"github.com/urfave/cli"
)

const defaultLogLevel = "info"

// log is the command's own subsystem logger. It is replaced in setupLogging
// once the level flag has been read.
var log = btclog.Disabled

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[hdpub] %v\n", err)
	os.Exit(1)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "hdpub"
	app.Version = "0.1.0"
	app.Usage = "derive BIP32 child public keys from an extended public key"
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "loglevel",
			Value:  defaultLogLevel,
			EnvVar: "HDPUB_LOGLEVEL",
			Usage: "logging level, one of trace, debug, info, " +
				"warn, error, critical or off",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		deriveCommand,
		derivePathCommand,
		privToPubCommand,
		hash256Command,
	}
	return app
}

// setupLogging wires the library loggers to a stderr backend at the level
// given by --loglevel.
func setupLogging(ctx *cli.Context) error {
	level, ok := btclog.LevelFromString(ctx.GlobalString("loglevel"))
	if !ok {
		return fmt.Errorf("unknown log level %q",
			ctx.GlobalString("loglevel"))
	}

	backend := btclog.NewBackend(ctx.App.ErrWriter)

	log = backend.Logger("HDPB")
	log.SetLevel(level)

	hdkeyLog := backend.Logger("HDKY")
	hdkeyLog.SetLevel(level)
	hdkey.UseLogger(hdkeyLog)

	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
