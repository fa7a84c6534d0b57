package networth

import "github.com/etnz/networth/date"

// PerformanceResponse is the performance endpoint answer. When the backend is
// still computing the history it answers with Success false and a Message.
type PerformanceResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    *PerformanceSnapshot `json:"data"`
}

// PerformanceSnapshot is the portfolio valuation over the selected timeframe.
type PerformanceSnapshot struct {
	CurrentValue     Money             `json:"current_value"`
	ChangeValue      Money             `json:"change_value"`
	ChangePercentage Percent           `json:"change_percentage"`
	Timeseries       []TimeseriesPoint `json:"timeseries"`
}

// TimeseriesPoint is one valuation, its date as sent by the backend.
type TimeseriesPoint struct {
	Date  string `json:"date"`
	Value Money  `json:"value"`
}

// PerformanceData is the performance ready to display.
type PerformanceData struct {
	IsPending        bool
	PendingMessage   string
	CurrentValue     Money
	ChangeValue      Money
	ChangePercentage Percent
	Timeseries       []ChartPoint
}

// ChartPoint is a timeseries point with a human readable date.
type ChartPoint struct {
	Date  string
	Value Money
}

// MarshalJSON writes the performance with the chart field names.
func (p PerformanceData) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("isPending", p.IsPending)
	var message any // null unless pending with a message
	if p.PendingMessage != "" {
		message = p.PendingMessage
	}
	w.Append("pendingMessage", message)
	w.Append("currentValue", p.CurrentValue)
	w.Append("changeValue", p.ChangeValue)
	w.Append("changePercentage", float64(p.ChangePercentage))
	points := make([]map[string]any, 0, len(p.Timeseries))
	for _, pt := range p.Timeseries {
		points = append(points, map[string]any{"date": pt.Date, "value": pt.Value})
	}
	w.Append("timeseries", points)
	return w.MarshalJSON()
}

// NormalizePerformance turns the endpoint answer into one of three states:
// nothing yet (nil response), pending, or ready. Both first states have all
// numbers at zero and no timeseries.
func NormalizePerformance(resp *PerformanceResponse) PerformanceData {
	empty := PerformanceData{Timeseries: []ChartPoint{}}
	if resp == nil {
		return empty
	}
	if !resp.Success {
		empty.IsPending = true
		empty.PendingMessage = resp.Message
		return empty
	}
	if resp.Data == nil {
		return empty
	}

	d := resp.Data
	res := PerformanceData{
		CurrentValue:     d.CurrentValue,
		ChangeValue:      d.ChangeValue,
		ChangePercentage: d.ChangePercentage,
		Timeseries:       make([]ChartPoint, 0, len(d.Timeseries)),
	}
	for _, ts := range d.Timeseries {
		label := ts.Date
		if on, err := date.ParseTimestamp(ts.Date); err == nil {
			label = on.Short()
		}
		res.Timeseries = append(res.Timeseries, ChartPoint{Date: label, Value: ts.Value})
	}
	return res
}
