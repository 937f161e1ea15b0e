// Package assetbook provides the accounting core for a personal multi-asset
// portfolio of equities and cryptocurrencies, together with the encoding and
// market-data plumbing needed by the `abk` command-line tool.
//
// The accounting engine is stateless and performs no I/O: every computation
// receives a full snapshot of its inputs (positions, prices, exchange rates)
// and returns a result. Its responsibilities are:
//   - Cost-Basis Ledger: maintaining, per held position, a quantity and a
//     weighted-average unit cost, merged on every buy and reduced (but never
//     recomputed) on every sell.
//   - PnL Calculation: realized and unrealized profit/loss and return on
//     investment, with identical arithmetic for both.
//   - Currency Normalization: converting native-currency amounts to a single
//     reporting currency through an externally supplied rate table.
//   - Aggregation: portfolio-wide totals computed after conversion to the
//     reporting currency, never by summing across currencies.
//   - Net-Worth History: a dated series of total net worth with at most one
//     entry per calendar day.
//
// Everything else is a collaborator around that core: market-data providers
// (Yahoo Finance, CoinGecko, exchangerate-api.com) deliver price and rate
// snapshots, and the encoding layer persists the portfolio, the realized-PnL
// ledger, expenses and the net-worth history in human-readable formats.
package assetbook
