package networth

import (
	"fmt"

	"github.com/etnz/networth/date"
)

// AssetType is the class of an asset. Values outside the known constants are
// kept as-is and used verbatim in labels.
type AssetType string

const (
	Stock AssetType = "STOCK"
	UTT   AssetType = "UTT" // unit trust fund
	Bond  AssetType = "BOND"
)

// TransactionType is the direction of a trade.
type TransactionType string

const (
	Buy  TransactionType = "BUY"
	Sell TransactionType = "SELL"
)

// AssetKey identifies an asset within a portfolio.
type AssetKey struct {
	Type AssetType
	ID   string
}

func (k AssetKey) String() string { return fmt.Sprintf("%s_%s", k.Type, k.ID) }

// fallbackName is the label of an asset with no name nor symbol.
func (k AssetKey) fallbackName() string { return fmt.Sprintf("%s ID %s", k.Type, k.ID) }

// Transaction is one executed trade. Transactions are never modified, they
// are folded into holdings.
type Transaction struct {
	ID          string          `json:"id"`
	AssetType   AssetType       `json:"asset_type"`
	AssetID     string          `json:"asset_id"`
	AssetName   string          `json:"asset_name,omitempty"`
	AssetSymbol string          `json:"asset_symbol,omitempty"`
	Type        TransactionType `json:"transaction_type"`
	Quantity    Quantity        `json:"quantity"`
	Price       Money           `json:"price"`        // unit price, informative
	TotalAmount Money           `json:"total_amount"` // total cash moved
	Date        date.Date       `json:"transaction_date"`
}

// Key returns the asset key of the transaction.
func (tx Transaction) Key() AssetKey { return AssetKey{Type: tx.AssetType, ID: tx.AssetID} }

// Label describes the trade the way the ledger lists it: "Bought CRDB".
func (tx Transaction) Label() string {
	what := tx.AssetSymbol
	if what == "" {
		what = tx.AssetName
	}
	if what == "" {
		what = tx.Key().fallbackName()
	}
	switch tx.Type {
	case Buy:
		return "Bought " + what
	case Sell:
		return "Sold " + what
	default:
		return string(tx.Type) + " " + what
	}
}

// CashOut reports whether the transaction takes cash out of the account.
func (tx Transaction) CashOut() bool { return tx.Type == Buy }
