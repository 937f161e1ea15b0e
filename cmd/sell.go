package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ycwu/assetbook"
)

type sellCmd struct {
	class    string
	quantity float64
	price    float64
	date     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale and realize its profit or loss" }
func (*sellCmd) Usage() string {
	return `abk sell [-class <equity|crypto>] [-d <date>] -q <quantity> -p <unit-price> <asset-id>

  Records a sale at the given unit price. The realized profit is computed
  against the position's weighted-average cost and appended to the
  realized-PnL ledger. The average cost of the remaining shares is unchanged.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "equity", "Asset class (equity or crypto).")
	f.Float64Var(&c.quantity, "q", 0, "Quantity sold.")
	f.Float64Var(&c.price, "p", 0, "Unit price received, in the asset's native currency.")
	f.StringVar(&c.date, "d", "", "Date of the sale (YYYY-MM-DD). Defaults to today.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: sell expects exactly one asset id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	class, err := assetbook.ParseAssetClass(c.class)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if c.quantity <= 0 || c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -q and -p must be positive.")
		return subcommands.ExitUsageError
	}

	on := assetbook.Today()
	if c.date != "" {
		on, err = assetbook.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	pf, err := DecodePortfolioFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	pos, ok := pf.Get(class, id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no %s position for %q.\n", class, id)
		return subcommands.ExitFailure
	}

	event, err := pf.Sell(class, id, assetbook.Q(c.quantity), assetbook.M(c.price, pos.Currency()), on)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if status := AppendRealizedEvent(event); status != subcommands.ExitSuccess {
		return status
	}
	if err := EncodePortfolioFile(pf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sold %s %s at %s, realized %s (%s)\n", event.Quantity, event.Name, event.SellPrice, event.PnL.SignedString(), event.ROI.SignedString())
	return subcommands.ExitSuccess
}
