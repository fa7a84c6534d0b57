// Package cmd implements the CLI application to display a portfolio dashboard.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/networth"
	"github.com/etnz/networth/config"
	"github.com/etnz/networth/date"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "dashboard")
	c.Register(&performanceCmd{}, "dashboard")
	c.Register(&allocationCmd{}, "dashboard")
	c.Register(&holdingsCmd{}, "dashboard")
	c.Register(&incomeCmd{}, "dashboard")
	c.Register(&transactionsCmd{}, "dashboard")

	c.Register(&portfoliosCmd{}, "portfolios")
	c.Register(&selectCmd{}, "portfolios")

	c.Register(&fmtCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// Commands lists the subcommands Register registers.
func Commands() []subcommands.Command {
	var res []subcommands.Command
	c := subcommands.NewCommander(flag.NewFlagSet("nw", flag.ContinueOnError), "nw")
	Register(c)
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		res = append(res, cmd)
	})
	return res
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configName = flag.String("config", "", "Name of the configuration file, without extension. Defaults to networth.")
var dataDir = flag.String("data", "", "Path to the data folder. Overrides the configuration.")
var asJSON = flag.Bool("json", false, "Print the view model as JSON instead of markdown.")
var verbose = flag.Bool("v", false, "Log debug messages.")

// app is what every dashboard command needs.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	store     *Store
	dashboard *networth.Dashboard
}

// newApp loads the configuration and returns a context carrying the logger.
func newApp(ctx context.Context) (context.Context, *app, error) {
	cfg, err := config.Load(*configName)
	if err != nil {
		return ctx, nil, err
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if *verbose {
		cfg.Log.Level = zerolog.LevelDebugValue
	}
	log, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return ctx, nil, err
	}
	a := &app{
		cfg:   cfg,
		log:   log,
		store: &Store{Dir: cfg.Data.Dir},
		dashboard: networth.NewDashboard(log,
			networth.WithAllocator(cfg.Allocator()),
			networth.WithFormatter(cfg.Formatter()),
		),
	}
	return log.WithContext(ctx), a, nil
}

// newLogger returns a console logger when pretty is set, a JSON one otherwise.
func newLogger(w io.Writer, c config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	if c.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// viewModel loads the records of the selected portfolio and aggregates them.
// timeframe, when not empty, overrides the saved one for this view only.
func (a *app) viewModel(ctx context.Context, timeframe string) (networth.ViewModel, error) {
	portfolios, err := a.store.Portfolios(ctx)
	if err != nil {
		return networth.ViewModel{}, err
	}
	state, err := a.store.LoadState()
	if err != nil {
		return networth.ViewModel{}, err
	}
	saved := state
	tf := a.cfg.Timeframe
	if state.Timeframe != "" {
		tf = state.Timeframe.String()
	}
	if state.Timeframe, err = date.ParseTimeframe(tf); err != nil {
		a.log.Warn().Err(err).Msg("ignoring saved timeframe")
	}

	sel := networth.NewSelection(state)
	if sel.Refresh(portfolios) {
		saved.SelectedID = sel.State().SelectedID
		if err := a.store.SaveState(saved); err != nil {
			a.log.Warn().Err(err).Msg("cannot save the selected portfolio")
		}
	}
	if timeframe != "" {
		if err := sel.SetTimeframe(timeframe); err != nil {
			return networth.ViewModel{}, err
		}
	}

	in, err := a.store.Inputs(ctx, sel.State().SelectedID)
	if err != nil {
		return networth.ViewModel{}, err
	}
	in.Portfolios = portfolios
	return a.dashboard.Build(sel, in), nil
}

// view is the common Execute of the dashboard commands: it builds the view
// model and prints either its JSON or the markdown render returns.
func view(ctx context.Context, timeframe string, render func(networth.ViewModel, networth.Formatter) string) subcommands.ExitStatus {
	ctx, a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	vm, err := a.viewModel(ctx, timeframe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio data from %q: %v\n", a.store.Dir, err)
		if errors.Is(err, date.ErrUnknownTimeframe) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	if *asJSON {
		return printJSON(vm)
	}
	printMarkdown(render(vm, a.dashboard.Formatter()))
	return subcommands.ExitSuccess
}

func printJSON(v any) subcommands.ExitStatus {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it as is when it
// cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
