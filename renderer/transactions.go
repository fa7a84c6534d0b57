package renderer

import (
	"strings"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the ledger of transactions in the given order.
func TransactionsMarkdown(txs []networth.Transaction, f networth.Formatter) string {
	var b strings.Builder
	writeTransactions(&b, txs, f, "Transactions")
	if b.Len() == 0 {
		return "## Transactions\n\nNo transactions.\n"
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeTransactions(b *strings.Builder, txs []networth.Transaction, f networth.Formatter, heading string) {
	section(b, func(doc *md.Markdown) bool {
		doc.H2(heading)
		rows := make([][]string, 0, len(txs))
		for _, tx := range txs {
			rows = append(rows, []string{
				tx.Date.String(),
				cell(tx.Label()),
				tx.Quantity.String(),
				f.Format(tx.Price),
				f.FormatSigned(tx.TotalAmount, tx.CashOut()),
			})
		}
		doc.Table(md.TableSet{
			Header:    []string{"Date", "Transaction", "Quantity", "Price", "Amount"},
			Alignment: align(2, 3),
			Rows:      rows,
		})
		return len(txs) > 0
	})
}
