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

type realizedCmd struct{}

func (*realizedCmd) Name() string     { return "realized" }
func (*realizedCmd) Synopsis() string { return "list realized profits and losses" }
func (*realizedCmd) Usage() string {
	return `abk realized

  Lists every past sale with its realized profit, and the total converted
  to the reporting currency.
`
}

func (c *realizedCmd) SetFlags(f *flag.FlagSet) {}

func (c *realizedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeRealizedFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	total, err := ledger.Total(*reportingCurrency, fetchRates())
	if err != nil {
		log.Printf("warning, could not convert realized total: %v", err)
		total = assetbook.M(0, *reportingCurrency)
	}

	printMarkdown(renderer.RealizedMarkdown(ledger, total, *reportingCurrency))
	return subcommands.ExitSuccess
}
