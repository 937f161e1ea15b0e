// Package cmd implements the CLI application to manage the asset book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/ycwu/assetbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&realizedCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&expenseCmd{}, "expenses")
	c.Register(&expensesCmd{}, "expenses")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.json", "Path to the portfolio file (JSON)")
var realizedFile = flag.String("realized-file", "realized.jsonl", "Path to the realized-PnL ledger file (JSONL)")
var expensesFile = flag.String("expenses-file", "expenses.jsonl", "Path to the expenses ledger file (JSONL)")
var historyFile = flag.String("history-file", "history.csv", "Path to the net-worth history file (CSV)")
var reportingCurrency = flag.String("currency", "TWD", "Reporting currency for aggregated totals")
var defaultUSDRate = flag.Float64("default-usd-rate", 30.5, "Fallback TWD-per-USD rate used when the rate service is unavailable")

// DecodePortfolioFile loads the portfolio, treating a missing file as empty.
func DecodePortfolioFile() (*assetbook.Portfolio, error) {
	f, err := os.Open(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, portfolio file does not exist, starting empty")
		return assetbook.NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	return assetbook.DecodePortfolio(f)
}

// EncodePortfolioFile saves the whole portfolio back to its file.
func EncodePortfolioFile(pf *assetbook.Portfolio) error {
	f, err := os.Create(*portfolioFile)
	if err != nil {
		return fmt.Errorf("could not write portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	return assetbook.EncodePortfolio(f, pf)
}

// DecodeRealizedFile loads the realized ledger, treating a missing file as empty.
func DecodeRealizedFile() (*assetbook.RealizedLedger, error) {
	f, err := os.Open(*realizedFile)
	if errors.Is(err, fs.ErrNotExist) {
		return assetbook.NewRealizedLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open realized file %q: %w", *realizedFile, err)
	}
	defer f.Close()
	return assetbook.DecodeRealizedLedger(f)
}

// AppendRealizedEvent appends a single event to the realized ledger file.
// The ledger is append-only: existing lines are never rewritten.
func AppendRealizedEvent(e assetbook.RealizedEvent) subcommands.ExitStatus {
	f, err := os.OpenFile(*realizedFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening realized file %q: %v\n", *realizedFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := assetbook.EncodeRealizedEvent(f, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to realized file %q: %v\n", *realizedFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// DecodeExpensesFile loads the expense ledger, treating a missing file as empty.
func DecodeExpensesFile() (*assetbook.ExpenseLedger, error) {
	f, err := os.Open(*expensesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return assetbook.NewExpenseLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open expenses file %q: %w", *expensesFile, err)
	}
	defer f.Close()
	return assetbook.DecodeExpenseLedger(f)
}

// AppendExpense appends a single expense to the expenses ledger file.
func AppendExpense(e assetbook.Expense) subcommands.ExitStatus {
	f, err := os.OpenFile(*expensesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening expenses file %q: %v\n", *expensesFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := assetbook.EncodeExpense(f, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to expenses file %q: %v\n", *expensesFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// DecodeHistoryFile loads the net-worth history, treating a missing file as empty.
func DecodeHistoryFile() (*assetbook.NetWorthHistory, error) {
	f, err := os.Open(*historyFile)
	if errors.Is(err, fs.ErrNotExist) {
		return assetbook.NewNetWorthHistory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open history file %q: %w", *historyFile, err)
	}
	defer f.Close()
	return assetbook.DecodeHistory(f, *reportingCurrency)
}

// EncodeHistoryFile saves the whole history back to its file.
func EncodeHistoryFile(h *assetbook.NetWorthHistory) error {
	f, err := os.Create(*historyFile)
	if err != nil {
		return fmt.Errorf("could not write history file %q: %w", *historyFile, err)
	}
	defer f.Close()
	return assetbook.EncodeHistory(f, h)
}
