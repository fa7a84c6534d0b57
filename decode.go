package networth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/networth/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// The backend wraps every list in an envelope like
//
//	{"success": true, "data": {"transactions": [...]}}
//
// Decoders accept either the envelope or the bare list. Records are decoded
// one by one: a malformed field is logged and replaced by its zero value, it
// never rejects the whole payload.

// DecodePortfolios reads the list of portfolios.
func DecodePortfolios(ctx context.Context, r io.Reader) ([]Portfolio, error) {
	return decodeList(ctx, r, "$.data.portfolios", func(rec record) Portfolio {
		return Portfolio{
			ID:          rec.str("id"),
			Name:        rec.str("name"),
			Description: rec.str("description"),
		}
	})
}

// DecodeTransactions reads the transactions of a portfolio.
func DecodeTransactions(ctx context.Context, r io.Reader) ([]Transaction, error) {
	return decodeList(ctx, r, "$.data.transactions", func(rec record) Transaction {
		return Transaction{
			ID:          rec.str("id"),
			AssetType:   AssetType(rec.str("asset_type")),
			AssetID:     rec.str("asset_id"),
			AssetName:   rec.str("asset_name"),
			AssetSymbol: rec.str("asset_symbol"),
			Type:        TransactionType(rec.str("transaction_type")),
			Quantity:    Quantity{rec.number("quantity")},
			Price:       Money{value: rec.number("price")},
			TotalAmount: Money{value: rec.number("total_amount")},
			Date:        rec.date("transaction_date"),
		}
	})
}

// DecodePositions reads the positions of a portfolio.
func DecodePositions(ctx context.Context, r io.Reader) ([]Position, error) {
	return decodeList(ctx, r, "$.data.positions", func(rec record) Position {
		return Position{
			AssetType:              AssetType(rec.str("asset_type")),
			AssetID:                rec.str("asset_id"),
			AssetName:              rec.str("asset_name"),
			AssetSymbol:            rec.str("asset_symbol"),
			Quantity:               Quantity{rec.number("quantity")},
			CurrentValue:           Money{value: rec.number("current_value")},
			CurrentPrice:           Money{value: rec.number("current_price")},
			ProfitLoss:             Money{value: rec.number("profit_loss")},
			ProfitLossPercent:      Percent(rec.number("profit_loss_percent").InexactFloat64()),
			TotalInvested:          Money{value: rec.number("total_invested")},
			TotalDividendsReceived: Money{value: rec.number("total_dividends_received")},
			TotalCouponsReceived:   Money{value: rec.number("total_coupons_received")},
			AnnualDividendRate:     Money{value: rec.number("annual_dividend_rate")},
			CouponRate:             Percent(rec.number("coupon_rate").InexactFloat64()),
			MaturityDate:           rec.date("maturity_date"),
		}
	})
}

// DecodeCalendar reads the upcoming income events of a portfolio.
func DecodeCalendar(ctx context.Context, r io.Reader) ([]CalendarEvent, error) {
	return decodeList(ctx, r, "$.data.events", func(rec record) CalendarEvent {
		return CalendarEvent{
			Date:            rec.date("event_date"),
			AssetName:       rec.str("asset_name"),
			AssetSymbol:     rec.str("asset_symbol"),
			EventType:       rec.str("event_type"),
			EstimatedAmount: Money{value: rec.number("estimated_amount")},
		}
	})
}

// DecodePerformance reads the performance answer. The answer is returned as
// is, pending or not; see NormalizePerformance.
func DecodePerformance(ctx context.Context, r io.Reader) (*PerformanceResponse, error) {
	jobj, err := readJSON(r)
	if err != nil {
		return nil, fmt.Errorf("cannot decode performance: %w", err)
	}
	root, ok := jobj.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cannot decode performance: expected an object, got %T", jobj)
	}
	log := zerolog.Ctx(ctx)
	resp := &PerformanceResponse{Success: root["success"] == true}
	if _, ok := root["success"]; !ok {
		// older answers carry no status, only data.
		resp.Success = root["data"] != nil
	}
	if msg, ok := root["message"].(string); ok {
		resp.Message = msg
	}
	data, ok := root["data"].(map[string]any)
	if !ok {
		return resp, nil
	}
	rec := record{fields: data, log: log, kind: "performance"}
	snap := &PerformanceSnapshot{
		CurrentValue:     Money{value: rec.number("current_value")},
		ChangeValue:      Money{value: rec.number("change_value")},
		ChangePercentage: Percent(rec.number("change_percentage").InexactFloat64()),
		Timeseries:       []TimeseriesPoint{},
	}
	points, _ := data["timeseries"].([]any)
	for i, p := range points {
		fields, ok := p.(map[string]any)
		if !ok {
			log.Warn().Int("index", i).Msg("skipping timeseries point that is not an object")
			continue
		}
		pt := record{fields: fields, log: log, kind: "timeseries", index: i}
		snap.Timeseries = append(snap.Timeseries, TimeseriesPoint{
			Date:  pt.str("date"),
			Value: Money{value: pt.number("value")},
		})
	}
	resp.Data = snap
	return resp, nil
}

// readJSON decodes r as a generic JSON document, numbers kept as json.Number.
func readJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}

// decodeList extracts the list at path (or the document itself when it is a
// list) and converts every object in it.
func decodeList[T any](ctx context.Context, r io.Reader, path string, conv func(record) T) ([]T, error) {
	kind := path[strings.LastIndex(path, ".")+1:]
	jobj, err := readJSON(r)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", kind, err)
	}

	log := zerolog.Ctx(ctx)
	var list []any
	switch v := jobj.(type) {
	case []any:
		list = v
	case map[string]any:
		jval, err := jsonpath.Get(path, v)
		if err != nil {
			// a missing list is an empty list.
			log.Debug().Err(err).Str("path", path).Msg("no list in document")
			return []T{}, nil
		}
		switch l := jval.(type) {
		case nil:
			return []T{}, nil
		case []any:
			list = l
		default:
			return nil, fmt.Errorf("cannot decode %s at %q: expected a list, got %T", kind, path, jval)
		}
	default:
		return nil, fmt.Errorf("cannot decode %s: expected an object or a list, got %T", kind, jobj)
	}

	res := make([]T, 0, len(list))
	for i, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			log.Warn().Str("kind", kind).Int("index", i).Msg("skipping record that is not an object")
			continue
		}
		res = append(res, conv(record{fields: fields, log: log, kind: kind, index: i}))
	}
	return res, nil
}

// record is one decoded JSON object with lenient accessors.
type record struct {
	fields map[string]any
	log    *zerolog.Logger
	kind   string
	index  int
}

// str returns the field as a string. Numbers are accepted, ids are often
// sent as integers.
func (r record) str(key string) string {
	switch v := r.fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return fmt.Sprint(v)
	default:
		r.warn(key, v, "not a string")
		return ""
	}
}

// number returns the field as a decimal, zero when missing or malformed.
func (r record) number(key string) decimal.Decimal {
	v, present := r.fields[key]
	if !present || v == nil {
		return decimal.Zero
	}
	d, ok := ParseNumber(v)
	if !ok {
		r.warn(key, v, "not a number")
		return decimal.Zero
	}
	return d
}

// date returns the field as a date, zero when missing or malformed.
func (r record) date(key string) date.Date {
	s := r.str(key)
	if s == "" {
		return date.Date{}
	}
	d, err := date.ParseTimestamp(s)
	if err != nil {
		r.warn(key, s, "not a date")
		return date.Date{}
	}
	return d
}

func (r record) warn(key string, v any, msg string) {
	r.log.Warn().
		Str("kind", r.kind).
		Int("index", r.index).
		Str("field", key).
		Interface("value", v).
		Msg(msg)
}
