package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	timeframe string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "display the transactions of the portfolio" }
func (*transactionsCmd) Usage() string {
	return `nw transactions [-t <timeframe>]

  Displays the transactions of the selected portfolio, in ledger order.
  With -t, only the transactions within the timeframe ending today are shown.

Usage Examples:
# Transactions since January 1st.
$ nw transactions -t ytd
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", "", "Only show transactions within this timeframe: 1D, 1W, 1M, YTD, 1Y or MAX.")
}

func (c *transactionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var window *date.Range
	if c.timeframe != "" {
		tf, err := date.ParseTimeframe(c.timeframe)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing timeframe: %v\n", err)
			return subcommands.ExitUsageError
		}
		r := tf.Range(date.Today())
		window = &r
	}
	return view(ctx, "", func(vm networth.ViewModel, f networth.Formatter) string {
		txs := vm.Transactions
		if window != nil {
			txs = within(txs, *window)
		}
		return renderer.TransactionsMarkdown(txs, f)
	})
}

// within returns the transactions dated within r, undated ones excluded.
func within(txs []networth.Transaction, r date.Range) []networth.Transaction {
	var res []networth.Transaction
	for _, tx := range txs {
		if !tx.Date.IsZero() && r.Contains(tx.Date) {
			res = append(res, tx)
		}
	}
	return res
}
