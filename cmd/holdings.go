package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display positions and holdings of the portfolio" }
func (*holdingsCmd) Usage() string {
	return `nw holdings

  Displays the positions reported by the backend, then the holdings
  replayed from the transactions: quantity, total cost and average cost of
  every asset still held.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, "", func(vm networth.ViewModel, f networth.Formatter) string {
		return renderer.HoldingsMarkdown(vm.Positions, vm.Holdings, f)
	})
}
