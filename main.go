package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/okexacct/constants"
	"github.com/lukehollenback/okexacct/exchange"
	"github.com/urfave/cli/v2"
)

const (
	Name = "≪okexacct≫"
)

var logger = constants.NewLogger(Name)

func main() {
	//
	// Register a kill signal handler with the operating system so that an in-flight request is
	// abandoned cleanly on interrupt.
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	//
	// Run the requested command.
	//
	if err := newApp().RunContext(ctx, os.Args); err != nil {
		if exchange.IsKind(err, exchange.AuthenticationFailure) {
			logger.Printf("%s Check the key, secret, passphrase and the machine's clock.", aurora.Bold(aurora.Red("Rejected.")))
		}

		stop()
		logger.Fatalf("Failed. (Error: %s)", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "okexacct",
		Usage: "read balances, positions, fills, bills and funding history from the OKX v5 REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Usage:   "API key",
				EnvVars: []string{"OKX_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "secret",
				Usage:   "API secret",
				EnvVars: []string{"OKX_API_SECRET"},
			},
			&cli.StringFlag{
				Name:    "passphrase",
				Usage:   "API passphrase",
				EnvVars: []string{"OKX_PASSPHRASE"},
			},
			&cli.StringFlag{
				Name:    "endpoint",
				Usage:   "REST origin; point it at a sandbox to test",
				EnvVars: []string{"OKX_ENDPOINT"},
			},
			&cli.BoolFlag{
				Name:  "simulated",
				Usage: "send requests to the demo trading environment",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every request",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout (0 leaves the transport default: none)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: json or csv",
				Value: formatJSON,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "write output to this file instead of stdout",
			},
		},
		Commands: commands(),
	}
}
