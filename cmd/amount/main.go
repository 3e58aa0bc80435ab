// Command amount evaluates exact decimal arithmetic on ledger amounts.
//
//	amount add 0.1 0.2           # 0.3
//	amount div 10 3              # 3.3333333
//	amount --precision 2 div 2 3 # 0.66
//	amount fee-total 100 1.5     # 101.5
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/amount"
	"github.com/calebcase/amount/decimal"
)

// Error is the error class for this command.
var Error = errs.Class("amount")

type calculator struct {
	log       *zap.Logger
	precision uint
}

func (c *calculator) setup(ctx *cli.Context) (err error) {
	c.precision = ctx.Uint("precision")

	if c.log != nil {
		return nil
	}

	if ctx.Bool("debug") {
		c.log, err = zap.NewDevelopment()
	} else {
		c.log, err = zap.NewProduction(zap.AddStacktrace(zapcore.PanicLevel))
	}
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

func (c *calculator) sync(ctx *cli.Context) error {
	if c.log != nil {
		_ = c.log.Sync()
	}

	return nil
}

// run evaluates one operation, logs it and prints the result.
func (c *calculator) run(ctx *cli.Context, arity int, fn func(args []string) (string, error)) (err error) {
	name := ctx.Command.Name
	args := ctx.Args().Slice()

	if len(args) != arity {
		err = Error.New("%s expects %d arguments, got %d", name, arity, len(args))
	} else {
		var out string

		out, err = fn(args)
		if err == nil {
			c.log.Debug("evaluated",
				zap.String("op", name),
				zap.Strings("args", args),
				zap.String("result", out),
			)

			_, err = fmt.Fprintln(ctx.App.Writer, out)
			if err != nil {
				err = Error.Wrap(err)
			}
		}
	}

	if err != nil {
		c.log.Error("operation failed",
			zap.String("op", name),
			zap.Strings("args", args),
			zap.Error(err),
		)
	}

	return err
}

func (c *calculator) binary(name, usage string, fn func(a, b string) (string, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<a> <b>",
		// Operands such as -1 are not flags.
		SkipFlagParsing: true,
		Action: func(ctx *cli.Context) error {
			return c.run(ctx, 2, func(args []string) (string, error) {
				return fn(args[0], args[1])
			})
		},
	}
}

func (c *calculator) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:            "parse",
			Usage:           "print the canonical form of an amount",
			ArgsUsage:       "<a>",
			SkipFlagParsing: true,
			Action: func(ctx *cli.Context) error {
				return c.run(ctx, 1, func(args []string) (string, error) {
					return amount.Canonical(args[0])
				})
			},
		},
		c.binary("add", "a + b", amount.Add),
		c.binary("sub", "a - b", amount.Subtract),
		c.binary("mul", "a * b", amount.Multiply),
		c.binary("div", "a / b truncated to --precision digits", func(a, b string) (string, error) {
			return amount.DivideWithPrecision(a, b, c.precision)
		}),
		c.binary("cmp", "-1, 0 or 1 as a is less than, equal to or greater than b", func(a, b string) (string, error) {
			r, err := amount.Compare(a, b)
			if err != nil {
				return "", err
			}

			return strconv.Itoa(r), nil
		}),
		c.binary("fee-total", "amount plus a fee of percent", amount.ApplyFeeTotal),
		c.binary("fee-amount", "the fee of percent on amount", amount.ApplyFeeAmount),
		{
			Name:            "units",
			Usage:           "convert an amount to ledger units",
			ArgsUsage:       "<a>",
			SkipFlagParsing: true,
			Action: func(ctx *cli.Context) error {
				return c.run(ctx, 1, func(args []string) (string, error) {
					d, err := decimal.Parse(args[0])
					if err != nil {
						return "", err
					}

					units, err := d.LedgerUnits()
					if err != nil {
						return "", err
					}

					return strconv.FormatInt(units, 10), nil
				})
			},
		},
		{
			Name:            "from-units",
			Usage:           "convert ledger units to an amount",
			ArgsUsage:       "<units>",
			SkipFlagParsing: true,
			Action: func(ctx *cli.Context) error {
				return c.run(ctx, 1, func(args []string) (string, error) {
					units, err := strconv.ParseInt(args[0], 10, 64)
					if err != nil {
						return "", Error.Wrap(err)
					}

					return decimal.FromLedgerUnits(units).String(), nil
				})
			},
		},
	}
}

func newApp(c *calculator) *cli.App {
	return &cli.App{
		Name:  "amount",
		Usage: "exact decimal arithmetic for ledger amounts",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "precision",
				Usage:   "fractional digits kept by div",
				Value:   decimal.DefaultPrecision,
				EnvVars: []string{"AMOUNT_PRECISION"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log with the development logger",
				EnvVars: []string{"AMOUNT_DEBUG"},
			},
		},
		Before:   c.setup,
		After:    c.sync,
		Commands: c.commands(),
	}
}

func main() {
	err := newApp(&calculator{}).Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
