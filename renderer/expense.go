package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ycwu/assetbook"
)

// ExpenseMarkdown renders the expense ledger and its per-category totals.
func ExpenseMarkdown(l *assetbook.ExpenseLedger, totals []assetbook.CategoryTotal, reporting string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")

	if l.Len() == 0 {
		doc.PlainText("No expenses recorded yet.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Date", "Category", "Amount"}}
	for e := range l.Expenses() {
		table.Rows = append(table.Rows, []string{e.Date.String(), e.Category, e.Amount.String()})
	}
	doc.Table(table)

	doc.H2(fmt.Sprintf("By Category (%s)", reporting))
	byCategory := md.TableSet{Header: []string{"Category", "Total"}}
	for _, c := range totals {
		byCategory.Rows = append(byCategory.Rows, []string{c.Category, c.Total.String()})
	}
	doc.Table(byCategory)

	return doc.String()
}
