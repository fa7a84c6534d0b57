package networth

import (
	"slices"

	"github.com/etnz/networth/date"
)

// CalendarEvent is an expected income event: a dividend payment, a coupon,
// a bond maturity.
type CalendarEvent struct {
	Date            date.Date `json:"event_date"`
	AssetName       string    `json:"asset_name"`
	AssetSymbol     string    `json:"asset_symbol"`
	EventType       string    `json:"event_type"`
	EstimatedAmount Money     `json:"estimated_amount"`
}

// SortEvents returns a copy of events ordered by date, events on the same
// day keep their relative order. Undated events come last.
func SortEvents(events []CalendarEvent) []CalendarEvent {
	res := slices.Clone(events)
	slices.SortStableFunc(res, func(a, b CalendarEvent) int {
		switch {
		case a.Date == b.Date:
			return 0
		case a.Date.IsZero():
			return 1
		case b.Date.IsZero():
			return -1
		case a.Date.Before(b.Date):
			return -1
		default:
			return 1
		}
	})
	return res
}

// EstimatedIncome sums the estimated amounts of events.
func EstimatedIncome(events []CalendarEvent) Money {
	var total Money
	for _, e := range events {
		total = total.Add(e.EstimatedAmount)
	}
	return total
}
