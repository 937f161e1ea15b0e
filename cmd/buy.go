package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/ycwu/assetbook"
)

type buyCmd struct {
	class    string
	name     string
	quantity float64
	price    float64
	currency string
	offline  bool
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of an asset" }
func (*buyCmd) Usage() string {
	return `abk buy [-class <equity|crypto>] [-n <name>] [-c <currency>] [-offline] -q <quantity> -p <unit-price> <asset-id>

  Records a purchase and merges it into the position's weighted-average cost.
  Unless -offline is set, the asset id is resolved against the market data
  provider and the canonical id, name and currency are used.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "equity", "Asset class (equity or crypto).")
	f.StringVar(&c.name, "n", "", "Display name. Defaults to the provider's name for the asset.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity bought.")
	f.Float64Var(&c.price, "p", 0, "Unit price paid, in the asset's native currency.")
	f.StringVar(&c.currency, "c", "", "Native currency. Defaults to the provider's currency (USD for crypto).")
	f.BoolVar(&c.offline, "offline", false, "Skip provider validation and use the id, name and currency as given.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: buy expects exactly one asset id.")
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

	name, currency := c.name, c.currency
	if !c.offline {
		quote, err := validateAsset(class, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving %q: %v\n", id, err)
			return subcommands.ExitFailure
		}
		id = quote.ID
		if name == "" {
			name = quote.Name
		}
		if currency == "" {
			currency = quote.Currency
		}
		log.Printf("resolved %q as %q (%s), last price %s", f.Arg(0), quote.Name, quote.ID, quote.Price)
	}
	if name == "" {
		name = id
	}
	if currency == "" {
		if class == assetbook.Crypto {
			currency = "USD"
		} else {
			fmt.Fprintln(os.Stderr, "Error: -offline requires -c to set the native currency.")
			return subcommands.ExitUsageError
		}
	}

	pf, err := DecodePortfolioFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	pos, err := pf.Buy(class, id, name, assetbook.Q(c.quantity), assetbook.M(c.price, currency))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := EncodePortfolioFile(pf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %s %s, now holding %s at avg cost %s\n", assetbook.Q(c.quantity), pos.Name, pos.Quantity, pos.AvgCost)
	return subcommands.ExitSuccess
}

// validateAsset resolves an asset id against the provider for its class.
// Crypto quotes are always taken in USD, the native currency of crypto positions.
func validateAsset(class assetbook.AssetClass, id string) (assetbook.Quote, error) {
	if class == assetbook.Crypto {
		return assetbook.NewCoinGecko().Validate(id, "USD")
	}
	return assetbook.NewYahooFinance().Validate(id)
}
