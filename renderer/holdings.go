package renderer

import (
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the positions when there are some, and the
// holdings reduced from transactions.
func HoldingsMarkdown(positions []networth.Position, holdings []networth.Holding, f networth.Formatter) string {
	var b strings.Builder
	section(&b, func(doc *md.Markdown) bool {
		doc.H2("Positions")
		rows := make([][]string, 0, len(positions))
		for _, p := range positions {
			rows = append(rows, []string{
				cell(p.Name()),
				string(p.AssetType),
				p.Quantity.String(),
				f.Format(p.CurrentPrice),
				f.Format(p.CurrentValue),
				f.Format(p.ProfitLoss),
				p.ProfitLossPercent.SignedString(),
			})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Asset", "Type", "Quantity", "Price", "Value", "P/L", "P/L %"},
			Alignment: align(2, 5),
			Rows:      rows,
		})
		return len(positions) > 0
	})
	section(&b, func(doc *md.Markdown) bool {
		doc.H2("Holdings")
		rows := make([][]string, 0, len(holdings))
		for _, h := range holdings {
			rows = append(rows, []string{
				cell(h.DisplayName),
				string(h.AssetType),
				h.Quantity.String(),
				f.Format(h.TotalCost),
				f.Format(h.AverageCost()),
			})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Asset", "Type", "Quantity", "Cost Basis", "Average Cost"},
			Alignment: align(2, 3),
			Rows:      rows,
		})
		return len(holdings) > 0
	})
	if b.Len() == 0 {
		return "## Holdings\n\nNo holdings.\n"
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
