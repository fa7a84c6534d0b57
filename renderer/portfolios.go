package renderer

import (
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// PortfoliosMarkdown lists the portfolios, the selected one marked.
func PortfoliosMarkdown(portfolios []networth.Portfolio, selected string) string {
	var b strings.Builder
	doc := md.NewMarkdown(&b)
	doc.H1("Portfolios")
	if len(portfolios) == 0 {
		para(doc, "No portfolio yet.")
		doc.Build()
		return b.String()
	}
	rows := make([][]string, 0, len(portfolios))
	for _, p := range portfolios {
		mark := ""
		if p.ID == selected {
			mark = "*"
		}
		rows = append(rows, []string{mark, p.ID, cell(p.Label()), cell(p.Description)})
	}
	doc.Table(md.TableSet{
		Header:    []string{"", "ID", "Name", "Description"},
		Alignment: []md.TableAlignment{md.AlignCenter, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Rows:      rows,
	})
	doc.Build()
	return b.String()
}
