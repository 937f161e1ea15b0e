package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ycwu/assetbook"
)

// SummaryMarkdown renders the portfolio summary: headline totals, the
// per-currency view, the asset-class allocation and the realized total.
func SummaryMarkdown(s *assetbook.Summary, realized assetbook.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date))

	doc.Table(md.TableSet{
		Header: []string{"Metric", fmt.Sprintf("Value (%s)", s.ReportingCurrency)},
		Rows: [][]string{
			{"Total Invested", s.TotalInvested.String()},
			{"Total Market Value", s.TotalMarketValue.String()},
			{"Unrealized PnL", s.TotalUnrealizedPnL.SignedString()},
			{"Overall ROI", s.TotalROI.SignedString()},
			{"Realized PnL", realized.SignedString()},
		},
	})

	if len(s.Currencies) > 1 {
		doc.H2("By Currency")
		table := md.TableSet{Header: []string{"Currency", "Invested", "Market Value", "PnL", "ROI"}}
		for _, b := range s.Currencies {
			table.Rows = append(table.Rows, []string{
				b.Currency,
				b.Invested.String(),
				b.MarketValue.String(),
				b.PnL.SignedString(),
				b.ROI.SignedString(),
			})
		}
		doc.Table(table)
	}

	if len(s.ByClass) > 0 {
		doc.H2("Allocation")
		table := md.TableSet{Header: []string{"Class", "Market Value"}}
		for _, class := range []assetbook.AssetClass{assetbook.Equity, assetbook.Crypto} {
			if value, ok := s.ByClass[class]; ok {
				table.Rows = append(table.Rows, []string{class.String(), value.String()})
			}
		}
		doc.Table(table)
	}

	return doc.String()
}
