package date

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Timeframe is the look-back window of the performance chart.
type Timeframe string

const (
	OneDay     Timeframe = "1D"
	OneWeek    Timeframe = "1W"
	OneMonth   Timeframe = "1M"
	YearToDate Timeframe = "YTD"
	OneYear    Timeframe = "1Y"
	Max        Timeframe = "Max"
)

// DefaultTimeframe is the timeframe selected when none is.
const DefaultTimeframe = OneMonth

// Timeframes lists all timeframes in display order.
var Timeframes = []Timeframe{OneDay, OneWeek, OneMonth, YearToDate, OneYear, Max}

// ErrUnknownTimeframe is returned when parsing an unsupported timeframe.
var ErrUnknownTimeframe = errors.New("unknown timeframe")

func (t Timeframe) String() string { return string(t) }

// ParseTimeframe parses a timeframe, case insensitive. An empty string is
// the DefaultTimeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTimeframe, nil
	}
	for _, t := range Timeframes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return DefaultTimeframe, fmt.Errorf("%w %q, want one of %v", ErrUnknownTimeframe, s, Timeframes)
}

// Range returns the window covered by the timeframe, ending on.
// Max has no lower bound.
func (t Timeframe) Range(on Date) Range {
	switch t {
	case OneDay:
		return Range{From: on, To: on}
	case OneWeek:
		return Range{From: on.Add(-6), To: on}
	case YearToDate:
		return Range{From: New(on.Year(), time.January, 1), To: on}
	case OneYear:
		return Range{From: on.AddDate(-1, 0, 1), To: on}
	case Max:
		return Range{To: on}
	default: // OneMonth
		return Range{From: on.AddDate(0, -1, 1), To: on}
	}
}
