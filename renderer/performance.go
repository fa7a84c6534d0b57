package renderer

import (
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders the valuation over a timeframe with its full
// timeseries.
func PerformanceMarkdown(p networth.PerformanceData, timeframe string, f networth.Formatter) string {
	var b strings.Builder
	writePerformance(&b, p, timeframe, f, true)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writePerformance(b *strings.Builder, p networth.PerformanceData, timeframe string, f networth.Formatter, series bool) {
	section(b, func(doc *md.Markdown) bool {
		doc.H2f("Performance (%s)", timeframe)
		if p.IsPending {
			msg := p.PendingMessage
			if msg == "" {
				msg = "Performance data is being calculated."
			}
			doc.Blockquote(msg)
			return true
		}
		para(doc, "Current value: **%s**", f.Format(p.CurrentValue))
		para(doc, "Change: %s (%s)", f.Format(p.ChangeValue), p.ChangePercentage.SignedString())
		if series && len(p.Timeseries) > 0 {
			rows := make([][]string, 0, len(p.Timeseries))
			for _, pt := range p.Timeseries {
				rows = append(rows, []string{pt.Date, f.Format(pt.Value)})
			}
			doc.Table(md.TableSet{
				Header:    []string{"Date", "Value"},
				Alignment: align(1, 1),
				Rows:      rows,
			})
		}
		return true
	})
}
