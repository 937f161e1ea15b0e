package cmd

import (
	"log"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/ycwu/assetbook"
)

// fetchRates returns the current USD-based rate table.
//
// When the rate service is unreachable the snapshot still has to be usable,
// so a table holding only the -default-usd-rate TWD rate is returned instead.
func fetchRates() assetbook.RateTable {
	rates, err := assetbook.NewExchangeRateAPI().Rates("USD")
	if err != nil {
		log.Printf("warning, could not fetch currency rates: %v, falling back to TWD=%v per USD", err, *defaultUSDRate)
		return assetbook.NewRateTable("USD").Set("TWD", decimal.NewFromFloat(*defaultUSDRate))
	}
	return rates
}

// fetchPrices queries the current price of every position, concurrently.
//
// Prices are returned in each position's native currency. A position whose
// price cannot be fetched is priced at zero so the report still renders.
func fetchPrices(pf *assetbook.Portfolio) assetbook.PriceTable {
	yahoo := assetbook.NewYahooFinance()
	gecko := assetbook.NewCoinGecko()

	prices := make(assetbook.PriceTable)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for p := range pf.Positions() {
		wg.Add(1)
		go func(p assetbook.Position) {
			defer wg.Done()

			var price assetbook.Money
			var err error
			switch p.Class {
			case assetbook.Crypto:
				price, err = gecko.SimplePrice(p.ID, p.Currency())
			default:
				price, err = yahoo.Price(p.ID)
			}
			if err != nil {
				log.Printf("warning, could not fetch price for %q: %v, using 0", p.ID, err)
				price = assetbook.M(0, p.Currency())
			}
			if price.Currency() != p.Currency() {
				// quote came back in another currency, keep the number but
				// realign it so valuation stays in the position's currency
				log.Printf("warning, price for %q quoted in %q instead of %q", p.ID, price.Currency(), p.Currency())
				price = assetbook.M(price.Decimal(), p.Currency())
			}

			mu.Lock()
			prices[p.ID] = price
			mu.Unlock()
		}(p)
	}
	wg.Wait()
	return prices
}

// fetchSummary loads the portfolio and values it at current market prices.
func fetchSummary() (*assetbook.Summary, assetbook.RateTable, error) {
	pf, err := DecodePortfolioFile()
	if err != nil {
		return nil, assetbook.RateTable{}, err
	}

	rates := fetchRates()
	prices := fetchPrices(pf)

	s, err := assetbook.Aggregate(pf, assetbook.Today(), prices, rates, *reportingCurrency)
	if err != nil {
		return nil, assetbook.RateTable{}, err
	}
	return s, rates, nil
}
