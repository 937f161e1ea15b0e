package assetbook

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// YahooFinance fetches equity quotes from the Yahoo Finance v8 chart API.
// Prices come back in the security's own trading currency, so a Taiwanese
// listing (e.g. "2330.TW") quotes in TWD and a US listing in USD.
type YahooFinance struct {
	client *http.Client
}

// NewYahooFinance creates a client without a cache: quotes move intraday.
func NewYahooFinance() *YahooFinance {
	return &YahooFinance{client: new(http.Client)}
}

// yahooChart mirrors the part of the v8 chart response we read.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (y *YahooFinance) chart(symbol string) (*yahooChart, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}
	addr := fmt.Sprintf("https://query2.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d", url.PathEscape(symbol))

	var response yahooChart
	if err := jwget(y.client, addr, &response); err != nil {
		return nil, fmt.Errorf("error fetching quote for %q: %w", symbol, err)
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("no quote for symbol %q", symbol)
	}
	return &response, nil
}

// Price returns the current native unit price for a ticker symbol.
func (y *YahooFinance) Price(symbol string) (Money, error) {
	response, err := y.chart(symbol)
	if err != nil {
		return Money{}, err
	}
	meta := response.Chart.Result[0].Meta
	return M(meta.RegularMarketPrice, strings.ToUpper(meta.Currency)), nil
}

// Validate checks that a ticker symbol exists and returns its canonical
// quote: symbol, display name, trading currency and current price. This is
// the buy-time gate that keeps invalid identifiers out of the portfolio.
func (y *YahooFinance) Validate(symbol string) (Quote, error) {
	response, err := y.chart(symbol)
	if err != nil {
		return Quote{}, err
	}
	meta := response.Chart.Result[0].Meta

	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}
	if name == "" {
		name = meta.Symbol
	}

	currency := strings.ToUpper(meta.Currency)
	if currency == "" {
		currency = "USD"
	}

	return Quote{
		ID:       meta.Symbol,
		Name:     name,
		Currency: currency,
		Price:    M(meta.RegularMarketPrice, currency),
	}, nil
}
