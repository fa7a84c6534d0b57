package networth

import "github.com/etnz/networth/date"

// Position is the server computed state of a holding. When positions are
// available they take precedence over anything derived from transactions.
type Position struct {
	AssetType         AssetType `json:"asset_type"`
	AssetID           string    `json:"asset_id"`
	AssetName         string    `json:"asset_name,omitempty"`
	AssetSymbol       string    `json:"asset_symbol,omitempty"`
	Quantity          Quantity  `json:"quantity"`
	CurrentValue      Money     `json:"current_value"`
	CurrentPrice      Money     `json:"current_price"`
	ProfitLoss        Money     `json:"profit_loss"`
	ProfitLossPercent Percent   `json:"profit_loss_percent"`

	// income
	TotalInvested          Money     `json:"total_invested"`
	TotalDividendsReceived Money     `json:"total_dividends_received"`
	TotalCouponsReceived   Money     `json:"total_coupons_received"`
	AnnualDividendRate     Money     `json:"annual_dividend_rate"`
	CouponRate             Percent   `json:"coupon_rate"`
	MaturityDate           date.Date `json:"maturity_date"` // zero when not a bond
}

// Key returns the asset key of the position.
func (p Position) Key() AssetKey { return AssetKey{Type: p.AssetType, ID: p.AssetID} }

// Name is the best available label: name, then symbol, then type and id.
func (p Position) Name() string {
	if p.AssetName != "" {
		return p.AssetName
	}
	if p.AssetSymbol != "" {
		return p.AssetSymbol
	}
	return p.Key().fallbackName()
}
