package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/networth"
	"github.com/etnz/networth/renderer"
	"github.com/google/subcommands"
)

type portfoliosCmd struct{}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list the portfolios" }
func (*portfoliosCmd) Usage() string {
	return `nw portfolios

  Lists the portfolios, the selected one is marked with a star.
`
}

func (c *portfoliosCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfoliosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, "", func(vm networth.ViewModel, _ networth.Formatter) string {
		return renderer.PortfoliosMarkdown(vm.Portfolios, vm.SelectedID)
	})
}

// selectCmd holds the flags for the 'select' subcommand.
type selectCmd struct {
	timeframe string
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "select the portfolio and timeframe to display" }
func (*selectCmd) Usage() string {
	return `nw select [-t <timeframe>] [<portfolio id>]

  Selects the portfolio the other commands display, and optionally the
  default performance timeframe. The selection is saved in the data folder.

Usage Examples:
# Select portfolio 7, with year to date performance.
$ nw select -t ytd 7
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", "", "Default performance timeframe: 1D, 1W, 1M, YTD, 1Y or MAX.")
}

func (c *selectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 || (f.NArg() == 0 && c.timeframe == "") {
		fmt.Fprintln(os.Stderr, "Error: select takes a portfolio id and/or a timeframe")
		return subcommands.ExitUsageError
	}

	ctx, a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	state, err := selectState(ctx, a.store, f.Arg(0), c.timeframe)
	if errors.Is(err, networth.ErrPortfolioNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	a.log.Debug().Str("portfolio", state.SelectedID).Str("timeframe", state.Timeframe.String()).Msg("selection saved")
	fmt.Printf("Selected portfolio %s\n", state.SelectedID)
	if state.Timeframe != "" {
		fmt.Printf("Selected timeframe %s\n", state.Timeframe)
	}
	return subcommands.ExitSuccess
}

// selectState applies the selection of id and timeframe, either can be
// empty, to the saved state and saves it.
func selectState(ctx context.Context, store *Store, id, timeframe string) (networth.State, error) {
	portfolios, err := store.Portfolios(ctx)
	if err != nil {
		return networth.State{}, err
	}
	saved, err := store.LoadState()
	if err != nil {
		return networth.State{}, err
	}
	sel := networth.NewSelection(saved)
	if id != "" {
		if err := sel.Select(portfolios, id); err != nil {
			return networth.State{}, err
		}
	}
	if timeframe != "" {
		if err := sel.SetTimeframe(timeframe); err != nil {
			return networth.State{}, err
		}
	}
	sel.Refresh(portfolios)
	state := sel.State()
	if timeframe == "" {
		// keep following the configured timeframe.
		state.Timeframe = saved.Timeframe
	}
	return state, store.SaveState(state)
}
