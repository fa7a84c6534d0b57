package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/networth"
	"github.com/rs/zerolog"
)

// File names in a Store folder.
const (
	PortfoliosFile   = "portfolios.json"
	TransactionsFile = "transactions.json"
	PositionsFile    = "positions.json"
	PerformanceFile  = "performance.json"
	CalendarFile     = "calendar.json"
	StateFile        = "state.json"
)

// Store reads the records saved from the portfolio backend.
//
// The folder holds the portfolio list and one sub folder per portfolio id:
//
//	portfolios.json
//	state.json
//	7/transactions.json
//	7/positions.json
//	7/performance.json
//	7/calendar.json
//
// Every file holds a backend response, missing files are empty.
type Store struct {
	Dir string
}

// open opens name under the store folder. It returns a nil reader if the
// file does not exist.
func (s *Store) open(ctx context.Context, name ...string) (io.ReadCloser, error) {
	path := filepath.Join(append([]string{s.Dir}, name...)...)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("file", path).Msg("no such file, assuming empty")
		return nil, nil
	}
	return f, err
}

// decodeFile decodes name with decode, or returns the zero value if the file
// does not exist.
func decodeFile[T any](ctx context.Context, s *Store, decode func(context.Context, io.Reader) (T, error), name ...string) (T, error) {
	var zero T
	f, err := s.open(ctx, name...)
	if err != nil || f == nil {
		return zero, err
	}
	defer f.Close()
	v, err := decode(ctx, f)
	if err != nil {
		return zero, fmt.Errorf("error decoding %q: %w", filepath.Join(name...), err)
	}
	return v, nil
}

// Portfolios returns the portfolio list.
func (s *Store) Portfolios(ctx context.Context) ([]networth.Portfolio, error) {
	return decodeFile(ctx, s, networth.DecodePortfolios, PortfoliosFile)
}

// Inputs returns the records of the portfolio id. An empty id has no records.
func (s *Store) Inputs(ctx context.Context, id string) (in networth.Inputs, err error) {
	if id == "" {
		return in, nil
	}
	if in.Transactions, err = decodeFile(ctx, s, networth.DecodeTransactions, id, TransactionsFile); err != nil {
		return in, err
	}
	if in.Positions, err = decodeFile(ctx, s, networth.DecodePositions, id, PositionsFile); err != nil {
		return in, err
	}
	if in.Performance, err = decodeFile(ctx, s, networth.DecodePerformance, id, PerformanceFile); err != nil {
		return in, err
	}
	if in.Calendar, err = decodeFile(ctx, s, networth.DecodeCalendar, id, CalendarFile); err != nil {
		return in, err
	}
	return in, nil
}

// LoadState reads the saved selection. A missing state is the zero State.
func (s *Store) LoadState() (networth.State, error) {
	var state networth.State
	data, err := os.ReadFile(filepath.Join(s.Dir, StateFile))
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("error decoding %q: %w", StateFile, err)
	}
	return state, nil
}

// SaveState writes the selection.
func (s *Store) SaveState(state networth.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, StateFile), append(data, '\n'), 0o644)
}
