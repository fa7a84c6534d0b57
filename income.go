package networth

// IncomeSummary totals the income received by a portfolio since inception.
type IncomeSummary struct {
	TotalDividends Money   `json:"totalDividends"` // stocks only
	TotalCoupons   Money   `json:"totalCoupons"`   // bonds only
	TotalInvested  Money   `json:"totalInvested"`  // all positions
	YieldOnCost    Percent `json:"yieldOnCost"`
}

// SummarizeIncome totals dividends, coupons and invested amounts across
// positions. The yield on cost is zero when nothing is invested.
func SummarizeIncome(positions []Position) IncomeSummary {
	var s IncomeSummary
	for _, p := range positions {
		switch p.AssetType {
		case Stock:
			s.TotalDividends = s.TotalDividends.Add(p.TotalDividendsReceived)
		case Bond:
			s.TotalCoupons = s.TotalCoupons.Add(p.TotalCouponsReceived)
		}
		s.TotalInvested = s.TotalInvested.Add(p.TotalInvested)
	}
	if s.TotalInvested.IsPositive() {
		s.YieldOnCost = s.TotalDividends.Add(s.TotalCoupons).Ratio(s.TotalInvested)
	}
	return s
}

// Income is the income received from a position: dividends for stocks,
// coupons for bonds, nothing for funds.
func (p Position) Income() Money {
	switch p.AssetType {
	case Stock:
		return p.TotalDividendsReceived
	case Bond:
		return p.TotalCouponsReceived
	default:
		return Money{}
	}
}

// YieldOnCost is the income received over the amount invested in the
// position, zero when nothing is invested.
func (p Position) YieldOnCost() Percent {
	if !p.TotalInvested.IsPositive() {
		return 0
	}
	return p.Income().Ratio(p.TotalInvested)
}

// IncomePositions filters the positions of a given asset type, the way the
// dividends and coupons tables list them.
func IncomePositions(positions []Position, t AssetType) []Position {
	var res []Position
	for _, p := range positions {
		if p.AssetType == t {
			res = append(res, p)
		}
	}
	return res
}
