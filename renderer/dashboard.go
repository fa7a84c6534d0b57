// Package renderer turns dashboard view models into markdown documents, ready
// to be printed in a terminal.
package renderer

import (
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the whole dashboard: overview, performance,
// allocation, income and recent activity. Empty sections are omitted.
func DashboardMarkdown(vm networth.ViewModel, f networth.Formatter) string {
	var b strings.Builder
	section(&b, func(doc *md.Markdown) bool {
		title(doc, vm)
		para(doc, "Total portfolio value: **%s**", f.Format(vm.TotalPortfolioValue))
		if len(vm.Portfolios) == 0 {
			para(doc, "No portfolio yet.")
		}
		return true
	})
	writePerformance(&b, vm.Performance, vm.Timeframe.String(), f, false)
	writeClasses(&b, vm.Classes, f)
	writeAllocation(&b, vm.Allocation, vm.AllocationSource, f)
	writeIncomeSummary(&b, vm.Income, f)
	writeTransactions(&b, recent(vm.Transactions, 5), f, "Recent Transactions")
	writeCalendar(&b, vm.Calendar, f)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// title writes the heading naming the selected portfolio.
func title(doc *md.Markdown, vm networth.ViewModel) {
	if vm.Selected == nil {
		doc.H1("Dashboard")
		return
	}
	doc.H1(vm.Selected.Label())
	if vm.Selected.Description != "" {
		para(doc, "%s", vm.Selected.Description)
	}
}

// recent returns the last n transactions, most recent first.
func recent(txs []networth.Transaction, n int) []networth.Transaction {
	res := make([]networth.Transaction, 0, n)
	for i := len(txs) - 1; i >= 0 && len(res) < n; i-- {
		res = append(res, txs[i])
	}
	return res
}

func writeClasses(b *strings.Builder, c networth.AssetClasses, f networth.Formatter) {
	section(b, func(doc *md.Markdown) bool {
		doc.H2("Asset Classes")
		doc.Table(md.TableSet{
			Header:    []string{"Class", "Value", "Share"},
			Alignment: align(1, 2),
			Rows: [][]string{
				{"Stocks", f.Format(c.Stocks), c.StocksPct.String()},
				{"Bonds", f.Format(c.Bonds), c.BondsPct.String()},
				{"Unit Trusts", f.Format(c.UTT), c.UTTPct.String()},
				{"**Net Worth**", "**" + f.Format(c.NetWorth) + "**", ""},
			},
		})
		return c.NetWorth.IsPositive()
	})
}
