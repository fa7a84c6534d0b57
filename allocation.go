package networth

import "hash/fnv"

// DefaultPalette is the ordered list of colors given to allocation entries.
var DefaultPalette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#EC4899",
}

// AllocationEntry is one slice of the allocation chart.
type AllocationEntry struct {
	Name          string
	Value         Percent // share of the total portfolio value, 0-100
	AbsoluteValue Money
	Color         string
}

// MarshalJSON writes the entry with the field names and order the charts expect.
func (e AllocationEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", e.Name)
	w.Append("value", float64(e.Value))
	w.Append("absoluteValue", e.AbsoluteValue)
	w.Append("color", e.Color)
	return w.MarshalJSON()
}

// Allocator computes allocation entries.
// Its zero value uses DefaultPalette and positional colors.
type Allocator struct {
	Palette []string
	// StableColors picks the color from the asset identity instead of the
	// position in the list, so an asset keeps its color across refreshes.
	StableColors bool
}

// ComputeAllocation is Allocator.Compute with the default settings.
func ComputeAllocation(total Money, positions []Position, txs []Transaction) []AllocationEntry {
	return Allocator{}.Compute(total, positions, txs)
}

// Compute breaks total down per asset.
//
// Positions are authoritative: when there is at least one position,
// transactions are ignored and each asset weighs its current market value.
// Otherwise the transactions are reduced and each asset weighs its cost basis.
// In that case the percentages mix cost basis with a market value total and
// are an approximation; they are not normalized to sum to 100 either way.
//
// A zero total yields no entries.
func (a Allocator) Compute(total Money, positions []Position, txs []Transaction) []AllocationEntry {
	if total.IsZero() {
		return []AllocationEntry{}
	}

	entries := []AllocationEntry{}
	var keys []AssetKey
	if len(positions) > 0 {
		for _, p := range positions {
			if !p.CurrentValue.IsPositive() {
				continue
			}
			entries = append(entries, AllocationEntry{
				Name:          p.Name(),
				Value:         p.CurrentValue.Ratio(total),
				AbsoluteValue: p.CurrentValue,
			})
			keys = append(keys, p.Key())
		}
	} else {
		for k, h := range ReduceHoldings(txs).Held() {
			name := h.DisplayName
			if name == "" {
				name = k.fallbackName()
			}
			entries = append(entries, AllocationEntry{
				Name:          name,
				Value:         h.TotalCost.Ratio(total),
				AbsoluteValue: h.TotalCost,
			})
			keys = append(keys, k)
		}
	}

	palette := a.palette()
	for i := range entries {
		if a.StableColors {
			entries[i].Color = palette[colorIndex(keys[i], len(palette))]
		} else {
			entries[i].Color = palette[i%len(palette)]
		}
	}
	return entries
}

func (a Allocator) palette() []string {
	if len(a.Palette) == 0 {
		return DefaultPalette
	}
	return a.Palette
}

// colorIndex hashes the asset identity into [0, n).
func colorIndex(k AssetKey, n int) int {
	h := fnv.New32a()
	h.Write([]byte(k.Type))
	h.Write([]byte{0})
	h.Write([]byte(k.ID))
	return int(h.Sum32() % uint32(n))
}
