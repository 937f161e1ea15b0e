package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ycwu/assetbook"
)

// RealizedMarkdown renders the append-only realized-PnL ledger with its
// total converted to the reporting currency.
func RealizedMarkdown(l *assetbook.RealizedLedger, total assetbook.Money, reporting string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Realized PnL")

	if l.Len() == 0 {
		doc.PlainText("No sells recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Asset", "Class", "Qty", "Sell Price", "Unit Cost", "PnL", "ROI"},
	}
	for e := range l.Events() {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			e.Name,
			e.Class.String(),
			e.Quantity.String(),
			e.SellPrice.String(),
			e.UnitCost.String(),
			e.PnL.SignedString(),
			e.ROI.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total realized in %s: %s", reporting, total.SignedString()))

	return doc.String()
}
