package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type incomeCmd struct{}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "display dividends, coupons and upcoming events" }
func (*incomeCmd) Usage() string {
	return `nw income

  Displays the income received so far, its yield on the invested amount,
  the dividend and coupon paying positions, and the upcoming events.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {}

func (c *incomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, "", func(vm networth.ViewModel, f networth.Formatter) string {
		return renderer.IncomeMarkdown(vm.Income, vm.Positions, vm.Calendar, f)
	})
}
