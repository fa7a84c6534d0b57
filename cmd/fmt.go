package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/config"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	currency string
	symbol   string
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "format amounts the way the dashboard does" }
func (*fmtCmd) Usage() string {
	return `nw fmt [-c <currency>] [-s <symbol>] <amount>...

  Prints each amount with two decimals, thousands separators and a magnitude
  suffix (K, M, B, T). Amounts that are not numbers print as N/A.

Usage Examples:
$ nw fmt 1234567 -250 abc
Tz1.23M
Tz-250.00
N/A
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "Currency code. Defaults to the configured one.")
	f.StringVar(&c.symbol, "s", "", "Currency symbol. Defaults to the currency's own.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: fmt requires at least one amount")
		return subcommands.ExitUsageError
	}
	formatter, err := c.formatter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, arg := range f.Args() {
		fmt.Println(formatter.Format(arg))
	}
	return subcommands.ExitSuccess
}

// formatter returns the formatter for the flags, falling back on the
// configuration.
func (c *fmtCmd) formatter() (networth.Formatter, error) {
	if c.currency != "" {
		return networth.NewFormatter(c.currency, c.symbol), nil
	}
	cfg, err := config.Load(*configName)
	if err != nil {
		return networth.Formatter{}, err
	}
	if c.symbol != "" {
		cfg.Currency.Symbol = c.symbol
	}
	return cfg.Formatter(), nil
}
