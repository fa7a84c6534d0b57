package renderer

import (
	"io"
	"strings"
	"testing"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// document is what a markdown output looks like once parsed: its headings
// and its tables, as plain text.
type document struct {
	headings []string
	tables   [][][]string // table, row, cell; the header is row 0
	quotes   int
}

func parse(t *testing.T, src string) document {
	t.Helper()
	source := []byte(src)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var doc document
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			doc.headings = append(doc.headings, plain(n, source))
			return ast.WalkSkipChildren, nil
		case *ast.Blockquote:
			doc.quotes++
		case *east.Table:
			doc.tables = append(doc.tables, nil)
		case *east.TableHeader, *east.TableRow:
			i := len(doc.tables) - 1
			var row []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				row = append(row, plain(c, source))
			}
			doc.tables[i] = append(doc.tables[i], row)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return doc
}

// plain concatenates the text segments below n.
func plain(n ast.Node, source []byte) string {
	var b strings.Builder
	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// column returns the cells of column i, header excluded.
func column(table [][]string, i int) []string {
	var res []string
	for _, row := range table[1:] {
		res = append(res, row[i])
	}
	return res
}

var tz = networth.NewFormatter("TZS", "Tz")

func sampleViewModel() networth.ViewModel {
	portfolios := []networth.Portfolio{{ID: "1", Name: "Main", Description: "Long term"}}
	in := networth.Inputs{
		Portfolios: portfolios,
		Positions: []networth.Position{
			{AssetType: networth.Stock, AssetID: "1", AssetSymbol: "CRDB", CurrentValue: networth.M(300000, ""),
				TotalInvested: networth.M(250000, ""), TotalDividendsReceived: networth.M(12500, "")},
			{AssetType: networth.Bond, AssetID: "2", AssetName: "T-Bond 10Y", CurrentValue: networth.M(700000, ""),
				TotalInvested: networth.M(700000, ""), TotalCouponsReceived: networth.M(50000, ""), CouponRate: 15.5},
		},
		Transactions: []networth.Transaction{
			{AssetType: networth.Stock, AssetID: "1", AssetSymbol: "CRDB", Type: networth.Buy,
				Quantity: networth.Q(500), TotalAmount: networth.M(250000, ""), Date: date.New(2024, 1, 10)},
			{AssetType: networth.Stock, AssetID: "1", AssetSymbol: "CRDB", Type: networth.Sell,
				Quantity: networth.Q(100), TotalAmount: networth.M(60000, ""), Date: date.New(2024, 2, 1)},
		},
		Performance: &networth.PerformanceResponse{
			Success: true,
			Data: &networth.PerformanceSnapshot{
				CurrentValue: networth.M(1000000, ""),
				ChangeValue:  networth.M(-25000, ""),
				Timeseries: []networth.TimeseriesPoint{
					{Date: "2024-01-31", Value: networth.M(1025000, "")},
					{Date: "2024-02-29", Value: networth.M(1000000, "")},
				},
			},
		},
		Calendar: []networth.CalendarEvent{
			{Date: date.New(2024, 6, 30), AssetSymbol: "CRDB", EventType: "DIVIDEND", EstimatedAmount: networth.M(15000, "")},
		},
	}
	return networth.Aggregate(networth.State{SelectedID: "1"}, in, networth.Allocator{})
}

func TestDashboardMarkdown(t *testing.T) {
	doc := parse(t, DashboardMarkdown(sampleViewModel(), tz))

	assert.Equal(t, []string{
		"Main",
		"Performance (1M)",
		"Asset Classes",
		"Allocation",
		"Income",
		"Recent Transactions",
		"Upcoming Events",
	}, doc.headings)
	require.Len(t, doc.tables, 5)

	allocation := doc.tables[1]
	assert.Equal(t, []string{"Asset", "Share", "Value", "Color"}, allocation[0])
	assert.Equal(t, []string{"CRDB", "T-Bond 10Y"}, column(allocation, 0))
	assert.Equal(t, []string{"30.00%", "70.00%"}, column(allocation, 1))
	assert.Equal(t, []string{"Tz300.00K", "Tz700.00K"}, column(allocation, 2))

	txs := doc.tables[3]
	assert.Equal(t, []string{"Sold CRDB", "Bought CRDB"}, column(txs, 1), "most recent first")
	assert.Equal(t, []string{"+Tz60.00K", "-Tz250.00K"}, column(txs, 4))
}

func TestDashboardMarkdownEmpty(t *testing.T) {
	vm := networth.Aggregate(networth.State{}, networth.Inputs{}, networth.Allocator{})
	doc := parse(t, DashboardMarkdown(vm, tz))
	assert.Equal(t, []string{"Dashboard", "Performance (1M)"}, doc.headings)
	assert.Empty(t, doc.tables)
}

func TestPerformanceMarkdown(t *testing.T) {
	vm := sampleViewModel()
	doc := parse(t, PerformanceMarkdown(vm.Performance, "1M", tz))
	require.Len(t, doc.tables, 1)
	assert.Equal(t, []string{"1/31/2024", "2/29/2024"}, column(doc.tables[0], 0))
	assert.Equal(t, []string{"Tz1.03M", "Tz1.00M"}, column(doc.tables[0], 1))

	pending := networth.NormalizePerformance(&networth.PerformanceResponse{Message: "Computing"})
	out := PerformanceMarkdown(pending, "YTD", tz)
	doc = parse(t, out)
	assert.Equal(t, []string{"Performance (YTD)"}, doc.headings)
	assert.Equal(t, 1, doc.quotes)
	assert.Contains(t, out, "Computing")
	assert.Empty(t, doc.tables)
}

func TestAllocationMarkdown(t *testing.T) {
	vm := sampleViewModel()
	doc := parse(t, AllocationMarkdown(vm.Allocation, vm.AllocationSource, tz))
	assert.Equal(t, []string{"Allocation"}, doc.headings)
	require.Len(t, doc.tables, 1)
	assert.Equal(t, []string{"#3B82F6", "#10B981"}, column(doc.tables[0], 3))

	out := AllocationMarkdown(nil, networth.NoAllocation, tz)
	assert.Contains(t, out, "No allocation data available.")
}

func TestHoldingsMarkdown(t *testing.T) {
	vm := sampleViewModel()
	doc := parse(t, HoldingsMarkdown(vm.Positions, vm.Holdings, tz))
	assert.Equal(t, []string{"Positions", "Holdings"}, doc.headings)
	require.Len(t, doc.tables, 2)
	holdings := doc.tables[1]
	assert.Equal(t, []string{"STOCK"}, column(holdings, 1))
	assert.Equal(t, []string{"400"}, column(holdings, 2))
	assert.Equal(t, []string{"Tz200.00K"}, column(holdings, 3))
	assert.Equal(t, []string{"Tz500.00"}, column(holdings, 4))

	doc = parse(t, HoldingsMarkdown(nil, vm.Holdings, tz))
	assert.Equal(t, []string{"Holdings"}, doc.headings)
}

func TestIncomeMarkdown(t *testing.T) {
	vm := sampleViewModel()
	doc := parse(t, IncomeMarkdown(vm.Income, vm.Positions, vm.Calendar, tz))
	assert.Equal(t, []string{"Income", "Dividends", "Coupons", "Upcoming Events"}, doc.headings)
	require.Len(t, doc.tables, 4)
	assert.Equal(t, []string{"Tz12.50K", "Tz50.00K", "Tz950.00K", "6.58%"}, doc.tables[0][1])
	assert.Equal(t, []string{"5.00%"}, column(doc.tables[1], 4))
	assert.Equal(t, []string{"N/A"}, column(doc.tables[2], 4))
}

func TestTransactionsMarkdown(t *testing.T) {
	out := TransactionsMarkdown([]networth.Transaction{
		{Type: networth.Buy, AssetName: "A | B", Quantity: networth.Q(1), TotalAmount: networth.M(5, "")},
	}, tz)
	doc := parse(t, out)
	require.Len(t, doc.tables, 1)
	require.Len(t, doc.tables[0], 2)
	assert.Len(t, doc.tables[0][1], 5, "a pipe in a name does not add a column")

	assert.Contains(t, TransactionsMarkdown(nil, tz), "No transactions.")
}

func TestPortfoliosMarkdown(t *testing.T) {
	doc := parse(t, PortfoliosMarkdown([]networth.Portfolio{{ID: "1", Name: "Main"}, {ID: "2"}}, "2"))
	require.Len(t, doc.tables, 1)
	assert.Equal(t, []string{"", "*"}, column(doc.tables[0], 0))
	assert.Equal(t, []string{"Main", "Portfolio 2"}, column(doc.tables[0], 2))

	assert.Contains(t, PortfoliosMarkdown(nil, ""), "No portfolio yet.")
}

func TestConditionalBlock(t *testing.T) {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "discarded")
		return false
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "kept")
		return true
	})
	assert.Equal(t, "kept", b.String())
}
