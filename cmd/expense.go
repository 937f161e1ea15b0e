package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/ycwu/assetbook"
	"github.com/ycwu/assetbook/renderer"
)

type expenseCmd struct {
	amount   float64
	currency string
	category string
	date     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `abk expense [-c <currency>] [-cat <category>] [-d <date>] -a <amount>

  Appends an expense to the expenses ledger.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount spent.")
	f.StringVar(&c.currency, "c", "", "Currency of the amount. Defaults to the reporting currency.")
	f.StringVar(&c.category, "cat", "other", "Expense category (food, housing, transport, ...).")
	f.StringVar(&c.date, "d", "", "Date of the expense (YYYY-MM-DD). Defaults to today.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -a must be positive.")
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = *reportingCurrency
	}

	on := assetbook.Today()
	if c.date != "" {
		var err error
		on, err = assetbook.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	e := assetbook.Expense{Date: on, Amount: assetbook.M(c.amount, currency), Category: c.category}
	if status := AppendExpense(e); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded %s on %s (%s)\n", e.Amount, e.Date, e.Category)
	return subcommands.ExitSuccess
}

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list expenses with per-category totals" }
func (*expensesCmd) Usage() string {
	return `abk expenses

  Lists recorded expenses and their totals per category, converted to the
  reporting currency.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeExpensesFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	totals, err := ledger.ByCategory(*reportingCurrency, fetchRates())
	if err != nil {
		log.Printf("warning, could not convert expense totals: %v", err)
	}

	printMarkdown(renderer.ExpenseMarkdown(ledger, totals, *reportingCurrency))
	return subcommands.ExitSuccess
}
