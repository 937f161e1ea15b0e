package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ycwu/assetbook"
)

// HoldingMarkdown renders the per-asset valuation table. Native columns are
// in each asset's own currency, the value column in the reporting currency.
func HoldingMarkdown(s *assetbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holdings on %s", s.Date))

	if len(s.Assets) == 0 {
		doc.PlainText("No positions held.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Asset", "Class", "Quantity", "Avg Cost", "Price", fmt.Sprintf("Value (%s)", s.ReportingCurrency), "PnL", "ROI"},
	}
	for _, a := range s.Assets {
		table.Rows = append(table.Rows, []string{
			a.Position.Name,
			a.Position.Class.String(),
			a.Position.Quantity.String(),
			a.Position.AvgCost.String(),
			a.Price.String(),
			a.Reporting.String(),
			a.PnL.SignedString(),
			a.ROI.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
