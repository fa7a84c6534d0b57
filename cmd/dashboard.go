package cmd

import (
	"context"
	"flag"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	timeframe string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the dashboard of the selected portfolio" }
func (*dashboardCmd) Usage() string {
	return `nw dashboard [-t <timeframe>]

  Displays the selected portfolio: total value, performance, asset classes,
  allocation, income, recent transactions and upcoming events.

  When no portfolio is selected yet, the first one is.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", "", "Performance timeframe: 1D, 1W, 1M, YTD, 1Y or MAX. Defaults to the selected one.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, c.timeframe, renderer.DashboardMarkdown)
}

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct {
	timeframe string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the portfolio value over a timeframe" }
func (*performanceCmd) Usage() string {
	return `nw performance [-t <timeframe>]

  Displays the current value, the change over the timeframe, and the value
  series. A performance still being computed by the backend is reported as
  pending.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", "", "Performance timeframe: 1D, 1W, 1M, YTD, 1Y or MAX. Defaults to the selected one.")
}

func (c *performanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, c.timeframe, func(vm networth.ViewModel, f networth.Formatter) string {
		return renderer.PerformanceMarkdown(vm.Performance, vm.Timeframe.String(), f)
	})
}

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the share of each asset in the portfolio" }
func (*allocationCmd) Usage() string {
	return `nw allocation

  Displays the share of each asset in the portfolio value. Shares come from
  the positions current values, or from the invested amounts when there are
  no positions yet.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, "", func(vm networth.ViewModel, f networth.Formatter) string {
		return renderer.AllocationMarkdown(vm.Allocation, vm.AllocationSource, f)
	})
}
