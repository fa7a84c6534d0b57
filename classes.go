package networth

// AssetClasses is the net worth broken down per asset class.
type AssetClasses struct {
	NetWorth Money `json:"netWorth"`
	Stocks   Money `json:"stocks"`
	Bonds    Money `json:"bonds"`
	UTT      Money `json:"utt"`

	StocksPct Percent `json:"stocksPercent"`
	BondsPct  Percent `json:"bondsPercent"`
	UTTPct    Percent `json:"uttPercent"`
}

// BreakdownByClass sums the positive current values of positions per asset
// class. Unknown classes count in the net worth only. Percentages are shares
// of the net worth, zero when the net worth is zero.
func BreakdownByClass(positions []Position) AssetClasses {
	var c AssetClasses
	for _, p := range positions {
		if !p.CurrentValue.IsPositive() {
			continue
		}
		c.NetWorth = c.NetWorth.Add(p.CurrentValue)
		switch p.AssetType {
		case Stock:
			c.Stocks = c.Stocks.Add(p.CurrentValue)
		case Bond:
			c.Bonds = c.Bonds.Add(p.CurrentValue)
		case UTT:
			c.UTT = c.UTT.Add(p.CurrentValue)
		}
	}
	c.StocksPct = c.Stocks.Ratio(c.NetWorth)
	c.BondsPct = c.Bonds.Ratio(c.NetWorth)
	c.UTTPct = c.UTT.Ratio(c.NetWorth)
	return c
}
