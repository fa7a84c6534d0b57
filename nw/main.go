// Command nw displays the dashboard of an investment portfolio in the
// terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/networth/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	// exits when called by the shell for completion.
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	ctx := context.Background()

	if sub := flag.Arg(0); sub != "" && !known(commander, sub) {
		if found, code := cmd.RunExtension(ctx, sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}

// known reports whether sub is a registered subcommand.
func known(commander *subcommands.Commander, sub string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == sub
	})
	return found
}
