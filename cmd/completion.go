package cmd

import (
	"flag"

	"github.com/etnz/networth/date"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the nw command line: the
// subcommands, their flags, and the global flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	return root
}

// timeframes predicts the timeframe names.
func timeframes() predict.Set {
	var res predict.Set
	for _, t := range date.Timeframes {
		res = append(res, t.String())
	}
	return res
}

// flagPredictors returns a predictor for every flag in fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "t":
			res[f.Name] = timeframes()
		case f.Name == "data":
			res[f.Name] = predict.Dirs("*")
		case isBool(f):
			res[f.Name] = predict.Nothing
		default:
			res[f.Name] = predict.Something
		}
	})
	return res
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
