package networth

import (
	"errors"
	"fmt"

	"github.com/etnz/networth/date"
	"github.com/rs/zerolog"
)

// ErrPortfolioNotFound is returned when selecting an unknown portfolio.
var ErrPortfolioNotFound = errors.New("portfolio not found")

// State is what the user selected: a portfolio and a performance timeframe.
type State struct {
	SelectedID string         `json:"selected_id"`
	Timeframe  date.Timeframe `json:"timeframe"`
}

// Selection holds the State between two refreshes. Its zero value has no
// portfolio selected and the default timeframe.
type Selection struct {
	state State
}

// NewSelection returns a Selection starting from s.
func NewSelection(s State) *Selection { return &Selection{state: s} }

// State returns the current state.
func (s *Selection) State() State {
	st := s.state
	if st.Timeframe == "" {
		st.Timeframe = date.DefaultTimeframe
	}
	return st
}

// Select explicitly selects the portfolio id among portfolios.
func (s *Selection) Select(portfolios []Portfolio, id string) error {
	if _, ok := FindPortfolio(portfolios, id); !ok {
		return fmt.Errorf("cannot select %q: %w", id, ErrPortfolioNotFound)
	}
	s.state.SelectedID = id
	return nil
}

// SetTimeframe changes the performance timeframe.
func (s *Selection) SetTimeframe(tf string) error {
	t, err := date.ParseTimeframe(tf)
	if err != nil {
		return err
	}
	s.state.Timeframe = t
	return nil
}

// Refresh applies the auto-selection rule for a new list of portfolios: when
// nothing valid is selected and there is at least one portfolio, the first
// one gets selected. It reports whether the selection changed.
//
// A valid selection is never overridden, and an empty list leaves the
// selection untouched.
func (s *Selection) Refresh(portfolios []Portfolio) bool {
	if len(portfolios) == 0 {
		return false
	}
	if s.state.SelectedID != "" {
		if _, ok := FindPortfolio(portfolios, s.state.SelectedID); ok {
			return false
		}
	}
	s.state.SelectedID = portfolios[0].ID
	return true
}

// Inputs are the latest records known for the selected portfolio. Any of
// them can be missing.
type Inputs struct {
	Portfolios   []Portfolio
	Transactions []Transaction
	Positions    []Position
	Performance  *PerformanceResponse
	Calendar     []CalendarEvent
}

// ViewModel is everything the dashboard displays for one portfolio.
type ViewModel struct {
	Currency            string
	Portfolios          []Portfolio
	SelectedID          string
	Selected            *Portfolio
	Timeframe           date.Timeframe
	Transactions        []Transaction
	Positions           []Position
	Performance         PerformanceData
	TotalPortfolioValue Money
	Allocation          []AllocationEntry
	AllocationSource    AllocationSource
	Holdings            []Holding
	Income              IncomeSummary
	Classes             AssetClasses
	Calendar            []CalendarEvent
}

// MarshalJSON writes the view model with the field names of the dashboard
// context.
func (vm ViewModel) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", vm.Currency)
	w.Append("portfolios", vm.Portfolios)
	w.Append("selectedPortfolioId", vm.SelectedID)
	if vm.Selected != nil {
		w.Append("selectedPortfolio", vm.Selected)
	}
	w.Append("timeframe", vm.Timeframe)
	w.Append("transactions", vm.Transactions)
	w.Append("positions", vm.Positions)
	w.Append("performanceData", vm.Performance)
	w.Append("totalPortfolioValue", vm.TotalPortfolioValue)
	w.Append("allocation", vm.Allocation)
	w.Append("allocationSource", vm.AllocationSource)
	w.Append("holdings", vm.Holdings)
	w.Append("income", vm.Income)
	w.Append("classes", vm.Classes)
	w.Append("calendar", vm.Calendar)
	return w.MarshalJSON()
}

// AllocationSource tells which records the allocation was computed from.
type AllocationSource string

const (
	FromPositions    AllocationSource = "positions"
	FromTransactions AllocationSource = "transactions"
	NoAllocation     AllocationSource = "none"
)

// Aggregate computes the view model from a state and inputs. It is a pure
// function: inputs are not modified and the result shares no memory that
// the next call would change.
func Aggregate(state State, in Inputs, alloc Allocator) ViewModel {
	vm := ViewModel{
		Portfolios:   in.Portfolios,
		SelectedID:   state.SelectedID,
		Timeframe:    state.Timeframe,
		Transactions: in.Transactions,
		Positions:    in.Positions,
		Calendar:     SortEvents(in.Calendar),
	}
	if vm.Timeframe == "" {
		vm.Timeframe = date.DefaultTimeframe
	}
	if p, ok := FindPortfolio(in.Portfolios, state.SelectedID); ok {
		vm.Selected = &p
	}

	vm.Performance = NormalizePerformance(in.Performance)
	vm.TotalPortfolioValue = vm.Performance.CurrentValue

	vm.Allocation = alloc.Compute(vm.TotalPortfolioValue, in.Positions, in.Transactions)
	switch {
	case len(vm.Allocation) == 0:
		vm.AllocationSource = NoAllocation
	case len(in.Positions) > 0:
		vm.AllocationSource = FromPositions
	default:
		vm.AllocationSource = FromTransactions
	}

	vm.Holdings = ReduceHoldings(in.Transactions).Values()
	vm.Income = SummarizeIncome(in.Positions)
	vm.Classes = BreakdownByClass(in.Positions)
	return vm
}

// Dashboard builds view models with a given configuration.
type Dashboard struct {
	allocator Allocator
	formatter Formatter
	log       zerolog.Logger
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithAllocator sets the palette and coloring mode of allocations.
func WithAllocator(a Allocator) Option { return func(d *Dashboard) { d.allocator = a } }

// WithFormatter sets the dashboard currency.
func WithFormatter(f Formatter) Option { return func(d *Dashboard) { d.formatter = f } }

// NewDashboard returns a Dashboard logging to log.
func NewDashboard(log zerolog.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		formatter: NewFormatter(DefaultCurrency, DefaultSymbol),
		log:       log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Formatter returns the dashboard money formatter.
func (d *Dashboard) Formatter() Formatter { return d.formatter }

// Build refreshes the selection against the current portfolios, then
// aggregates in.
//
// The inputs are expected to belong to the selected portfolio: when Build
// changes the selection the caller should fetch the new portfolio's records
// and call Build again.
func (d *Dashboard) Build(sel *Selection, in Inputs) ViewModel {
	if sel.Refresh(in.Portfolios) {
		d.log.Debug().Str("portfolio", sel.state.SelectedID).Msg("auto selected portfolio")
	}
	vm := Aggregate(sel.State(), in, d.allocator)
	vm.Currency = d.formatter.Currency

	ev := d.log.Debug().
		Str("portfolio", vm.SelectedID).
		Str("timeframe", vm.Timeframe.String()).
		Int("transactions", len(in.Transactions)).
		Int("positions", len(in.Positions)).
		Str("allocation_source", string(vm.AllocationSource))
	if vm.Performance.IsPending {
		ev = ev.Str("pending", vm.Performance.PendingMessage)
	}
	ev.Msg("dashboard aggregated")
	return vm
}
