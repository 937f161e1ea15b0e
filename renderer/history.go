package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/ycwu/assetbook"
)

// HistoryMarkdown renders the net-worth series, oldest first.
func HistoryMarkdown(h *assetbook.NetWorthHistory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net-Worth History")

	if h.Len() == 0 {
		doc.PlainText("No snapshots recorded yet.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Date", "Net Worth"}}
	for on, value := range h.Values() {
		table.Rows = append(table.Rows, []string{on.String(), value.String()})
	}
	doc.Table(table)

	return doc.String()
}
