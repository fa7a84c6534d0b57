package networth

import "iter"

// Holding is the running aggregate of one asset: quantity held and the cost
// basis of that quantity. Quantity and TotalCost are never negative.
type Holding struct {
	AssetType   AssetType
	AssetID     string
	DisplayName string
	Quantity    Quantity
	TotalCost   Money
}

// MarshalJSON writes the holding with the dashboard field names.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("assetType", h.AssetType)
	w.Append("assetId", h.AssetID)
	w.Append("displayName", h.DisplayName)
	w.Append("quantity", h.Quantity)
	w.Append("totalCost", h.TotalCost)
	return w.MarshalJSON()
}

// Key returns the asset key of the holding.
func (h Holding) Key() AssetKey { return AssetKey{Type: h.AssetType, ID: h.AssetID} }

// AverageCost is the cost per unit currently held, zero for an empty holding.
func (h Holding) AverageCost() Money {
	if !h.Quantity.IsPositive() {
		return Money{cur: h.TotalCost.cur}
	}
	return h.TotalCost.Div(h.Quantity)
}

// apply folds tx into h using the weighted average cost method.
func (h *Holding) apply(tx Transaction) {
	switch tx.Type {
	case Buy:
		h.Quantity = h.Quantity.Add(tx.Quantity)
		h.TotalCost = h.TotalCost.Add(tx.TotalAmount)
	case Sell:
		// a sell releases its share of the cost basis at the current average
		// cost, and leaves the average cost unchanged.
		h.TotalCost = h.TotalCost.Sub(h.AverageCost().Mul(tx.Quantity))
		h.Quantity = h.Quantity.Sub(tx.Quantity)
	default:
		return
	}
	// overselling is tolerated but never leaves a negative state behind.
	h.Quantity = h.Quantity.clamp()
	h.TotalCost = h.TotalCost.clamp()
}

// Holdings is the result of folding a transaction sequence: one Holding per
// asset, iterated in the order assets were first seen.
type Holdings struct {
	keys []AssetKey
	byID map[AssetKey]*Holding
}

// NewHoldings returns an empty set of holdings.
func NewHoldings() *Holdings {
	return &Holdings{byID: make(map[AssetKey]*Holding)}
}

// ReduceHoldings folds transactions, in the given order, into holdings.
// The caller is responsible for the chronological order.
func ReduceHoldings(txs []Transaction) *Holdings {
	hs := NewHoldings()
	for _, tx := range txs {
		hs.Apply(tx)
	}
	return hs
}

// Apply folds a single transaction into the holdings.
//
// The asset is registered even when the transaction type is unknown, the fold
// itself is then a no-op.
func (hs *Holdings) Apply(tx Transaction) {
	key := tx.Key()
	h, ok := hs.byID[key]
	if !ok {
		name := tx.AssetName
		if name == "" {
			name = string(tx.AssetType)
		}
		h = &Holding{
			AssetType:   tx.AssetType,
			AssetID:     tx.AssetID,
			DisplayName: name,
		}
		hs.byID[key] = h
		hs.keys = append(hs.keys, key)
	}
	h.apply(tx)
}

// Len returns the number of assets seen.
func (hs *Holdings) Len() int { return len(hs.keys) }

// Get returns the holding for key.
func (hs *Holdings) Get(key AssetKey) (Holding, bool) {
	h, ok := hs.byID[key]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Keys returns the asset keys in first-seen order.
func (hs *Holdings) Keys() []AssetKey {
	return append([]AssetKey(nil), hs.keys...)
}

// All iterates over holdings in first-seen order.
func (hs *Holdings) All() iter.Seq2[AssetKey, Holding] {
	return func(yield func(AssetKey, Holding) bool) {
		for _, k := range hs.keys {
			if !yield(k, *hs.byID[k]) {
				return
			}
		}
	}
}

// Values returns a copy of all holdings in first-seen order.
func (hs *Holdings) Values() []Holding {
	res := make([]Holding, 0, len(hs.keys))
	for _, h := range hs.All() {
		res = append(res, h)
	}
	return res
}

// Held returns the holdings that still have both a quantity and a cost.
func (hs *Holdings) Held() iter.Seq2[AssetKey, Holding] {
	return func(yield func(AssetKey, Holding) bool) {
		for k, h := range hs.All() {
			if !h.Quantity.IsPositive() || !h.TotalCost.IsPositive() {
				continue
			}
			if !yield(k, h) {
				return
			}
		}
	}
}
