package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/okexacct/exchange"
	"github.com/lukehollenback/okexacct/exchange/okx"
	"github.com/lukehollenback/okexacct/writer"
	"github.com/urfave/cli/v2"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"

	timeLayout = time.RFC3339
)

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "balances",
			Usage: "per-currency balance details",
			Action: func(c *cli.Context) error {
				details, err := newClient(c).Balances(c.Context)
				if err != nil {
					return err
				}

				logTotalEquity(details)

				return emit(c, "balances", details)
			},
		},
		{
			Name:  "positions",
			Usage: "open positions",
			Flags: []cli.Flag{instTypeFlag(), instIDFlag(), &cli.StringFlag{Name: "pos-id"}, paramFlag()},
			Action: func(c *cli.Context) error {
				data, err := newClient(c).Positions(c.Context, &okx.PositionsFilter{
					InstType: c.String("inst-type"),
					InstID:   c.String("inst-id"),
					PosID:    c.String("pos-id"),
					Extra:    extraParams(c),
				})

				return emitOrFail(c, "positions", data, err)
			},
		},
		{
			Name:  "fills",
			Usage: "transaction details of the last three days",
			Flags: append(cursorFlags(),
				instTypeFlag(), instIDFlag(),
				&cli.StringFlag{Name: "uly"},
				&cli.StringFlag{Name: "inst-family"},
				&cli.StringFlag{Name: "ord-id"},
			),
			Action: func(c *cli.Context) error {
				data, err := newClient(c).Fills(c.Context, &okx.FillsFilter{
					InstType:   c.String("inst-type"),
					Uly:        c.String("uly"),
					InstFamily: c.String("inst-family"),
					InstID:     c.String("inst-id"),
					OrdID:      c.String("ord-id"),
					After:      c.String("after"),
					Before:     c.String("before"),
					Begin:      timestamp(c, "begin"),
					End:        timestamp(c, "end"),
					Limit:      c.Int("limit"),
					Extra:      extraParams(c),
				})

				return emitOrFail(c, "fills", data, err)
			},
		},
		billsCommand("bills", "account bills of the last seven days", (*okx.Client).Bills),
		billsCommand("bills-archive", "account bills of the last three months", (*okx.Client).BillsArchive),
		{
			Name:  "interest-accrued",
			Usage: "interest accrued on borrowings",
			Flags: append(timeRangeFlags(),
				ccyFlag(), instIDFlag(),
				&cli.StringFlag{Name: "type", Usage: "1: VIP loans, 2: market loans"},
				&cli.StringFlag{Name: "mgn-mode"},
			),
			Action: func(c *cli.Context) error {
				data, err := newClient(c).InterestAccrued(c.Context, &okx.InterestAccruedFilter{
					Type:    c.String("type"),
					Ccy:     c.String("ccy"),
					InstID:  c.String("inst-id"),
					MgnMode: c.String("mgn-mode"),
					After:   timestamp(c, "after"),
					Before:  timestamp(c, "before"),
					Limit:   c.Int("limit"),
					Extra:   extraParams(c),
				})

				return emitOrFail(c, "interest-accrued", data, err)
			},
		},
		{
			Name:  "asset-bills",
			Usage: "funding account bills",
			Flags: append(timeRangeFlags(),
				ccyFlag(),
				&cli.StringFlag{Name: "type"},
				&cli.StringFlag{Name: "client-id"},
			),
			Action: func(c *cli.Context) error {
				data, err := newClient(c).AssetBills(c.Context, &okx.AssetBillsFilter{
					Ccy:      c.String("ccy"),
					Type:     c.String("type"),
					ClientID: c.String("client-id"),
					After:    timestamp(c, "after"),
					Before:   timestamp(c, "before"),
					Limit:    c.Int("limit"),
					Extra:    extraParams(c),
				})

				return emitOrFail(c, "asset-bills", data, err)
			},
		},
		{
			Name:      "instruments",
			Usage:     "instrument metadata of one instrument type",
			ArgsUsage: "<SPOT|MARGIN|SWAP|FUTURES|OPTION>",
			Flags: []cli.Flag{
				instIDFlag(),
				&cli.StringFlag{Name: "uly"},
				&cli.StringFlag{Name: "inst-family"},
				paramFlag(),
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("instruments takes exactly one instrument type, got %d arguments", c.NArg())
				}

				data, err := newClient(c).Instruments(c.Context, strings.ToUpper(c.Args().First()), &okx.InstrumentsFilter{
					Uly:        c.String("uly"),
					InstFamily: c.String("inst-family"),
					InstID:     c.String("inst-id"),
					Extra:      extraParams(c),
				})

				return emitOrFail(c, "instruments", data, err)
			},
		},
		{
			Name:  "deposits",
			Usage: "deposit history",
			Flags: append(timeRangeFlags(),
				ccyFlag(),
				&cli.StringFlag{Name: "dep-id"},
				&cli.StringFlag{Name: "tx-id"},
				&cli.StringFlag{Name: "type"},
				&cli.StringFlag{Name: "state"},
			),
			Action: func(c *cli.Context) error {
				data, err := newClient(c).DepositHistory(c.Context, &okx.DepositHistoryFilter{
					Ccy:    c.String("ccy"),
					DepID:  c.String("dep-id"),
					TxID:   c.String("tx-id"),
					Type:   c.String("type"),
					State:  c.String("state"),
					After:  timestamp(c, "after"),
					Before: timestamp(c, "before"),
					Limit:  c.Int("limit"),
					Extra:  extraParams(c),
				})

				return emitOrFail(c, "deposits", data, err)
			},
		},
		{
			Name:  "withdrawals",
			Usage: "withdrawal history",
			Flags: append(timeRangeFlags(),
				ccyFlag(),
				&cli.StringFlag{Name: "wd-id"},
				&cli.StringFlag{Name: "client-id"},
				&cli.StringFlag{Name: "tx-id"},
				&cli.StringFlag{Name: "type"},
				&cli.StringFlag{Name: "state"},
			),
			Action: func(c *cli.Context) error {
				data, err := newClient(c).WithdrawalHistory(c.Context, &okx.WithdrawalHistoryFilter{
					Ccy:      c.String("ccy"),
					WdID:     c.String("wd-id"),
					ClientID: c.String("client-id"),
					TxID:     c.String("tx-id"),
					Type:     c.String("type"),
					State:    c.String("state"),
					After:    timestamp(c, "after"),
					Before:   timestamp(c, "before"),
					Limit:    c.Int("limit"),
					Extra:    extraParams(c),
				})

				return emitOrFail(c, "withdrawals", data, err)
			},
		},
		{
			Name:      "get",
			Usage:     "signed GET of any path, query string included",
			ArgsUsage: "<path>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return fmt.Errorf("get takes exactly one path, got %d arguments", c.NArg())
				}

				return runGet(c, newClient(c), c.Args().First())
			},
		},
	}
}

func billsCommand(name string, usage string, fetch func(*okx.Client, context.Context, *okx.BillsFilter) (json.RawMessage, error)) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: append(cursorFlags(),
			instTypeFlag(), ccyFlag(),
			&cli.StringFlag{Name: "mgn-mode"},
			&cli.StringFlag{Name: "ct-type"},
			&cli.StringFlag{Name: "type"},
			&cli.StringFlag{Name: "sub-type"},
		),
		Action: func(c *cli.Context) error {
			data, err := fetch(newClient(c), c.Context, &okx.BillsFilter{
				InstType: c.String("inst-type"),
				Ccy:      c.String("ccy"),
				MgnMode:  c.String("mgn-mode"),
				CtType:   c.String("ct-type"),
				Type:     c.String("type"),
				SubType:  c.String("sub-type"),
				After:    c.String("after"),
				Before:   c.String("before"),
				Begin:    timestamp(c, "begin"),
				End:      timestamp(c, "end"),
				Limit:    c.Int("limit"),
				Extra:    extraParams(c),
			})

			return emitOrFail(c, name, data, err)
		},
	}
}

//
// runGet is kept against the generic interface so that it works with any account client.
//
func runGet(c *cli.Context, client exchange.AccountClient, path string) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	data, err := client.Get(c.Context, path)

	return emitOrFail(c, "get", data, err)
}

func newClient(c *cli.Context) *okx.Client {
	return okx.NewClient(&okx.Config{
		Endpoint:   c.String("endpoint"),
		Key:        c.String("key"),
		Secret:     c.String("secret"),
		Passphrase: c.String("passphrase"),
		HTTPClient: &http.Client{Timeout: c.Duration("timeout")},
		Simulated:  c.Bool("simulated"),
		Verbose:    c.Bool("verbose"),
	})
}

func emitOrFail(c *cli.Context, name string, data json.RawMessage, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return emit(c, name, data)
}

//
// emit writes the payload in the requested format to stdout or to the --output file.
//
func emit(c *cli.Context, name string, data json.RawMessage) error {
	var out io.Writer = c.App.Writer
	target := "stdout"

	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		out = f
		target = path
	}

	switch c.String("format") {
	case formatCSV:
		_, err := writer.New(out, target).Write(data)
		return err

	case formatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')

		_, err := out.Write(buf.Bytes())
		return err
	}

	return fmt.Errorf("unknown output format %q for %s", c.String("format"), name)
}

func logTotalEquity(details json.RawMessage) {
	decoded, err := okx.DecodeBalanceDetails(details)
	if err != nil {
		logger.Printf("Could not total the balances. (Error: %s)", err)
		return
	}

	logger.Printf(
		"%d currencies, total equity %s.",
		len(decoded), aurora.Bold(aurora.Green(fmt.Sprintf("%s USD", okx.TotalEquityUSD(decoded)))),
	)
}

func extraParams(c *cli.Context) okx.Params {
	var params okx.Params

	for _, kv := range c.StringSlice("param") {
		k, v, _ := strings.Cut(kv, "=")
		params = params.Add(k, v)
	}

	return params
}

func timestamp(c *cli.Context, name string) time.Time {
	if t := c.Timestamp(name); t != nil {
		return *t
	}

	return time.Time{}
}

func instTypeFlag() cli.Flag {
	return &cli.StringFlag{Name: "inst-type", Usage: "SPOT, MARGIN, SWAP, FUTURES or OPTION"}
}

func instIDFlag() cli.Flag {
	return &cli.StringFlag{Name: "inst-id", Usage: "instrument ID, e.g. BTC-USDT"}
}

func ccyFlag() cli.Flag {
	return &cli.StringFlag{Name: "ccy", Usage: "currency, e.g. BTC"}
}

func paramFlag() cli.Flag {
	return &cli.StringSliceFlag{Name: "param", Usage: "extra key=value query parameter, passed through as is"}
}

// cursorFlags are for endpoints that page by record ID and filter by begin/end time.
func cursorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "after", Usage: "return records older than this ID"},
		&cli.StringFlag{Name: "before", Usage: "return records newer than this ID"},
		&cli.TimestampFlag{Name: "begin", Layout: timeLayout},
		&cli.TimestampFlag{Name: "end", Layout: timeLayout},
		&cli.IntFlag{Name: "limit"},
		paramFlag(),
	}
}

// timeRangeFlags are for endpoints that page by timestamp.
func timeRangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.TimestampFlag{Name: "after", Layout: timeLayout, Usage: "return records earlier than this time"},
		&cli.TimestampFlag{Name: "before", Layout: timeLayout, Usage: "return records later than this time"},
		&cli.IntFlag{Name: "limit"},
		paramFlag(),
	}
}
