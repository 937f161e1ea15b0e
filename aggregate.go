package assetbook

import (
	"fmt"
	"sort"
)

// PriceTable is a market-price snapshot: native unit price per asset id.
// Like the rate table it is supplied per valuation pass. The data-acquisition
// layer is responsible for delivering a consistent snapshot with every held
// asset present, substituting its own fallback for unavailable quotes.
type PriceTable map[string]Money

// AssetValuation is the live view of one position against the price snapshot.
type AssetValuation struct {
	Position    Position
	Price       Money // current native unit price
	MarketValue Money // in native currency
	Reporting   Money // market value converted to the reporting currency
	PnL         Money // unrealized, in native currency
	ROI         Percent
}

// CurrencyBucket sub-totals the portfolio for one native currency, so the
// return on investment can be read per currency as well as blended.
type CurrencyBucket struct {
	Currency    string
	Invested    Money // converted to the reporting currency
	MarketValue Money
	PnL         Money
	ROI         Percent
}

// Summary is the portfolio-wide aggregation handed to the presentation
// layer: all totals are in the reporting currency.
type Summary struct {
	Date              Date
	ReportingCurrency string

	TotalInvested      Money
	TotalMarketValue   Money
	TotalUnrealizedPnL Money
	TotalROI           Percent // blended across all currencies

	Assets     []AssetValuation
	Currencies []CurrencyBucket          // per-currency view of the same totals
	ByClass    map[AssetClass]Money      // market value per asset class, reporting currency
}

// Aggregate values every position against the supplied price and rate
// snapshots and combines them into reporting-currency totals.
//
// Each position's market value and invested capital are converted to the
// reporting currency first and summed after, never the other way around:
// summing native amounts across currencies would be meaningless. The
// function is pure: it fetches nothing and mutates nothing.
//
// Every held asset must have a price in the table; a missing entry is an
// error, not a zero.
func Aggregate(pf *Portfolio, on Date, prices PriceTable, rates RateTable, reporting string) (*Summary, error) {
	s := &Summary{
		Date:              on,
		ReportingCurrency: reporting,
		TotalInvested:     M(0, reporting),
		TotalMarketValue:  M(0, reporting),
		ByClass:           make(map[AssetClass]Money),
	}

	buckets := make(map[string]*CurrencyBucket)

	for p := range pf.Positions() {
		price, ok := prices[p.ID]
		if !ok {
			return nil, fmt.Errorf("no price for asset %q in snapshot", p.ID)
		}

		marketValue := price.Mul(p.Quantity)
		pnl, roi := ComputePnL(p.Quantity, p.AvgCost, price)

		marketReporting, err := Normalize(marketValue, reporting, rates)
		if err != nil {
			return nil, fmt.Errorf("valuing %q: %w", p.ID, err)
		}
		investedReporting, err := Normalize(p.Invested(), reporting, rates)
		if err != nil {
			return nil, fmt.Errorf("valuing %q: %w", p.ID, err)
		}

		s.Assets = append(s.Assets, AssetValuation{
			Position:    p,
			Price:       price,
			MarketValue: marketValue,
			Reporting:   marketReporting,
			PnL:         pnl,
			ROI:         roi,
		})

		s.TotalMarketValue = s.TotalMarketValue.Add(marketReporting)
		s.TotalInvested = s.TotalInvested.Add(investedReporting)
		s.ByClass[p.Class] = s.ByClass[p.Class].Add(marketReporting)

		b, ok := buckets[p.Currency()]
		if !ok {
			b = &CurrencyBucket{
				Currency:    p.Currency(),
				Invested:    M(0, reporting),
				MarketValue: M(0, reporting),
			}
			buckets[p.Currency()] = b
		}
		b.Invested = b.Invested.Add(investedReporting)
		b.MarketValue = b.MarketValue.Add(marketReporting)
	}

	s.TotalUnrealizedPnL = s.TotalMarketValue.Sub(s.TotalInvested)
	s.TotalROI = returnOn(s.TotalUnrealizedPnL, s.TotalInvested)

	for _, b := range buckets {
		b.PnL = b.MarketValue.Sub(b.Invested)
		b.ROI = returnOn(b.PnL, b.Invested)
		s.Currencies = append(s.Currencies, *b)
	}
	sort.Slice(s.Currencies, func(i, j int) bool {
		return s.Currencies[i].Currency < s.Currencies[j].Currency
	})

	return s, nil
}

// returnOn is pnl over invested as a percentage, 0 when nothing was invested.
func returnOn(pnl, invested Money) Percent {
	if !invested.IsPositive() {
		return 0
	}
	return Percent(pnl.Decimal().Div(invested.Decimal()).InexactFloat64() * 100)
}
