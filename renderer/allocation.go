package renderer

import (
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// AllocationMarkdown renders the allocation breakdown of the total value.
func AllocationMarkdown(entries []networth.AllocationEntry, source networth.AllocationSource, f networth.Formatter) string {
	var b strings.Builder
	writeAllocation(&b, entries, source, f)
	if b.Len() == 0 {
		return "## Allocation\n\nNo allocation data available.\n"
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeAllocation(b *strings.Builder, entries []networth.AllocationEntry, source networth.AllocationSource, f networth.Formatter) {
	section(b, func(doc *md.Markdown) bool {
		doc.H2("Allocation")
		if source == networth.FromTransactions {
			para(doc, "_Estimated from the cost basis of transactions._")
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{cell(e.Name), e.Value.String(), f.Format(e.AbsoluteValue), "`" + e.Color + "`"})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Asset", "Share", "Value", "Color"},
			Alignment: align(1, 3),
			Rows:      rows,
		})
		return len(entries) > 0
	})
}
