package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Contains return true date is included in the range (boundaries included).
// A zero From leaves the range open on the left.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	return !date.After(r.To)
}

func (r Range) String() string {
	if r.From.IsZero() {
		return fmt.Sprintf("..%s", r.To)
	}
	return fmt.Sprintf("%s..%s", r.From, r.To)
}
