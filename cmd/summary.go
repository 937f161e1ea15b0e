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

type summaryCmd struct {
	noRecord bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio at current market prices" }
func (*summaryCmd) Usage() string {
	return `abk summary [-no-record]

  Values every position at its current market price, aggregates everything
  in the reporting currency, and records today's net worth in the history
  file (unless -no-record).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noRecord, "no-record", false, "Do not record today's net worth in the history file.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, rates, err := fetchSummary()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	realized, err := DecodeRealizedFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	realizedTotal, err := realized.Total(*reportingCurrency, rates)
	if err != nil {
		log.Printf("warning, could not convert realized total: %v", err)
		realizedTotal = assetbook.M(0, *reportingCurrency)
	}

	printMarkdown(renderer.SummaryMarkdown(s, realizedTotal))

	if c.noRecord {
		return subcommands.ExitSuccess
	}
	history, err := DecodeHistoryFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := history.Record(s.Date, s.TotalMarketValue); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording net worth: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeHistoryFile(history); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
