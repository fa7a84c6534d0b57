package networth

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is the dashboard currency when none is configured.
	DefaultCurrency = "TZS"
	// DefaultSymbol is the prefix used for DefaultCurrency.
	DefaultSymbol = "Tz"
	// NotAvailable is what FormatAmount prints for missing or malformed amounts.
	NotAvailable = "N/A"
)

// magnitudes are evaluated in order, the first matching threshold wins.
var magnitudes = []struct {
	threshold decimal.Decimal
	divisor   decimal.Decimal
	suffix    string
}{
	{decimal.New(1, 12), decimal.New(1, 12), "T"},
	{decimal.New(1, 9), decimal.New(1, 9), "B"},
	{decimal.New(1, 6), decimal.New(1, 6), "M"},
	{decimal.New(1, 4), decimal.New(1, 3), "K"},
}

// grouped renders cents as "1,234.56" with a plain leading "-" for negative values.
var grouped = money.NewFormatter(2, ".", ",", "", "1")

var maxCents = decimal.NewFromInt(math.MaxInt64)

// FormatAmount renders amount with two fraction digits, thousands separators
// and a magnitude suffix, prefixed by symbol: 12345.6 with "Tz" gives "Tz12.35K".
//
// amount can be any Go number, a numeric string, a decimal, a Money or a
// Quantity. Missing or non numeric amounts give "N/A".
func FormatAmount(amount any, symbol string) string {
	v, ok := ParseNumber(amount)
	if !ok {
		return NotAvailable
	}

	suffix := ""
	abs := v.Abs()
	for _, m := range magnitudes {
		if abs.GreaterThanOrEqual(m.threshold) {
			v = v.Div(m.divisor)
			suffix = m.suffix
			break
		}
	}

	cents := v.Round(2).Shift(2)
	if cents.Abs().GreaterThan(maxCents) {
		// beyond int64 cents, thousands of trillions: skip grouping.
		return symbol + v.StringFixed(2) + suffix
	}
	number := grouped.Format(cents.IntPart())
	if cents.IsZero() && v.IsNegative() {
		// negative amounts keep their sign even when they round to zero.
		number = "-" + number
	}
	return symbol + number + suffix
}

// Formatter formats amounts in a given currency.
// Its zero value formats with DefaultSymbol.
type Formatter struct {
	Currency string
	Symbol   string
}

// NewFormatter returns a Formatter for the currency code. When symbol is
// empty DefaultCurrency gets DefaultSymbol, other currencies their own
// grapheme, or the code itself if unknown.
func NewFormatter(code, symbol string) Formatter {
	if code == "" {
		code = DefaultCurrency
	}
	if symbol == "" && code == DefaultCurrency {
		symbol = DefaultSymbol
	}
	if symbol == "" {
		if c := money.GetCurrency(code); c != nil && c.Grapheme != "" {
			symbol = c.Grapheme
		} else {
			symbol = code
		}
	}
	return Formatter{Currency: code, Symbol: symbol}
}

// Format is FormatAmount with the formatter's symbol.
func (f Formatter) Format(amount any) string {
	symbol := f.Symbol
	if symbol == "" && f.Currency == "" {
		symbol = DefaultSymbol
	}
	return FormatAmount(amount, symbol)
}

// FormatSigned prefixes the formatted absolute amount with "+" or "-", the
// way ledger lines show cash in and out.
func (f Formatter) FormatSigned(amount Money, negative bool) string {
	sign := "+"
	if negative {
		sign = "-"
	}
	return sign + f.Format(amount.value.Abs())
}
