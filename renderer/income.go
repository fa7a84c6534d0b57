package renderer

import (
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// IncomeMarkdown renders the income summary, then the dividends received
// from stocks and the coupons received from bonds, and the upcoming events.
func IncomeMarkdown(s networth.IncomeSummary, positions []networth.Position, events []networth.CalendarEvent, f networth.Formatter) string {
	var b strings.Builder
	writeIncomeSummary(&b, s, f)
	section(&b, func(doc *md.Markdown) bool {
		stocks := networth.IncomePositions(positions, networth.Stock)
		doc.H2("Dividends")
		rows := make([][]string, 0, len(stocks))
		for _, p := range stocks {
			rows = append(rows, []string{
				cell(p.Name()),
				f.Format(p.TotalInvested),
				f.Format(p.TotalDividendsReceived),
				f.Format(p.AnnualDividendRate),
				p.YieldOnCost().String(),
			})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Stock", "Invested", "Received", "Annual Rate", "Yield on Cost"},
			Alignment: align(1, 4),
			Rows:      rows,
		})
		return len(stocks) > 0
	})
	section(&b, func(doc *md.Markdown) bool {
		bonds := networth.IncomePositions(positions, networth.Bond)
		doc.H2("Coupons")
		rows := make([][]string, 0, len(bonds))
		for _, p := range bonds {
			maturity := p.MaturityDate.String()
			if maturity == "" {
				maturity = networth.NotAvailable
			}
			rows = append(rows, []string{
				cell(p.Name()),
				f.Format(p.TotalInvested),
				f.Format(p.TotalCouponsReceived),
				p.CouponRate.String(),
				maturity,
			})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Bond", "Invested", "Received", "Coupon Rate", "Maturity"},
			Alignment: align(1, 4),
			Rows:      rows,
		})
		return len(bonds) > 0
	})
	writeCalendar(&b, events, f)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeIncomeSummary(b *strings.Builder, s networth.IncomeSummary, f networth.Formatter) {
	section(b, func(doc *md.Markdown) bool {
		doc.H2("Income")
		doc.Table(md.TableSet{
			Header:    []string{"Total Dividends", "Total Coupons", "Total Invested", "Yield on Cost"},
			Alignment: align(0, 4),
			Rows: [][]string{{
				f.Format(s.TotalDividends),
				f.Format(s.TotalCoupons),
				f.Format(s.TotalInvested),
				s.YieldOnCost.String(),
			}},
		})
		return s.TotalInvested.IsPositive()
	})
}

func writeCalendar(b *strings.Builder, events []networth.CalendarEvent, f networth.Formatter) {
	section(b, func(doc *md.Markdown) bool {
		doc.H2("Upcoming Events")
		rows := make([][]string, 0, len(events))
		for _, e := range events {
			asset := e.AssetSymbol
			if asset == "" {
				asset = e.AssetName
			}
			rows = append(rows, []string{e.Date.String(), cell(asset), cell(e.EventType), f.Format(e.EstimatedAmount)})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Date", "Asset", "Event", "Estimated"},
			Alignment: align(3, 1),
			Rows:      rows,
		})
		para(doc, "Expected income: **%s**", f.Format(networth.EstimatedIncome(events)))
		return len(events) > 0
	})
}
