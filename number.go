package networth

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the leading number of a string, the way a lenient
// float parser would: "12.5%" reads as 12.5.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber converts an arbitrary value into a decimal.
//
// It returns false when the value is nil, is not a number, or is not finite.
func ParseNumber(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, false
		}
		return *x, true
	case Money:
		return x.value, true
	case Quantity:
		return x.value, true
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case *float64:
		if x == nil {
			return decimal.Zero, false
		}
		return fromFloat(*x)
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int8:
		return decimal.NewFromInt(int64(x)), true
	case int16:
		return decimal.NewFromInt(int64(x)), true
	case int32:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case *int:
		if x == nil {
			return decimal.Zero, false
		}
		return decimal.NewFromInt(int64(*x)), true
	case uint:
		return decimal.NewFromUint64(uint64(x)), true
	case uint8:
		return decimal.NewFromUint64(uint64(x)), true
	case uint16:
		return decimal.NewFromUint64(uint64(x)), true
	case uint32:
		return decimal.NewFromUint64(uint64(x)), true
	case uint64:
		return decimal.NewFromUint64(x), true
	case json.Number:
		return parseString(string(x))
	case string:
		return parseString(x)
	case *string:
		if x == nil {
			return decimal.Zero, false
		}
		return parseString(*x)
	default:
		return decimal.Zero, false
	}
}

// SafeNumber is the safe-parse-or-default of v: malformed values read as 0.
func SafeNumber(v any) decimal.Decimal {
	d, _ := ParseNumber(v)
	return d
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func parseString(s string) (decimal.Decimal, bool) {
	prefix := numericPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseJSONNumber reads a raw JSON value that should hold a number, possibly
// quoted. It never fails, the boolean reports whether a number was found.
func parseJSONNumber(b []byte) (decimal.Decimal, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return decimal.Zero, false
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return decimal.Zero, false
		}
		return parseString(s)
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
