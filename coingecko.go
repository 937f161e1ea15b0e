package assetbook

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// CoinGecko fetches cryptocurrency prices and resolves user-supplied
// identifiers against the CoinGecko search API.
type CoinGecko struct {
	client *http.Client
}

// NewCoinGecko creates a client without a cache: crypto never sleeps.
func NewCoinGecko() *CoinGecko {
	return &CoinGecko{client: new(http.Client)}
}

// SimplePrice returns the current price of a coin in the given quote
// currency (e.g. the reporting currency). The caller derives the coin's
// native-currency price from it when the two differ.
func (g *CoinGecko) SimplePrice(coinID, quoteCurrency string) (Money, error) {
	quote := strings.ToLower(quoteCurrency)
	addr := fmt.Sprintf("https://api.coingecko.com/api/v3/simple/price?ids=%s&vs_currencies=%s",
		url.QueryEscape(coinID), url.QueryEscape(quote))

	var jobj any
	if err := jwget(g.client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error fetching price for %q: %w", coinID, err)
	}

	path := fmt.Sprintf("$.%s.%s", coinID, quote)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("no price for coin %q: %q %w", coinID, path, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("price for coin %q is not a number: %v", coinID, jval)
	}
	return M(val, strings.ToUpper(quoteCurrency)), nil
}

// CoinResult is one entry of a CoinGecko search response.
type CoinResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// ResolveCoin picks the coin a user meant among search results:
// an exact symbol match wins, then an exact id match, then the first
// result. Comparison is case-insensitive. Returns false when the result
// list is empty.
//
// This first-match-wins policy belongs to the lookup collaborator, not the
// accounting core; it mirrors how the original search behaved so that the
// same input keeps resolving to the same coin.
func ResolveCoin(query string, coins []CoinResult) (CoinResult, bool) {
	if len(coins) == 0 {
		return CoinResult{}, false
	}
	query = strings.ToLower(strings.TrimSpace(query))
	for _, c := range coins {
		if strings.ToLower(c.Symbol) == query {
			return c, true
		}
	}
	for _, c := range coins {
		if strings.ToLower(c.ID) == query {
			return c, true
		}
	}
	return coins[0], true
}

// Search queries the CoinGecko search API.
func (g *CoinGecko) Search(query string) ([]CoinResult, error) {
	addr := "https://api.coingecko.com/api/v3/search?query=" + url.QueryEscape(query)

	var response struct {
		Coins []CoinResult `json:"coins"`
	}
	if err := jwget(g.client, addr, &response); err != nil {
		return nil, fmt.Errorf("error searching coin %q: %w", query, err)
	}
	return response.Coins, nil
}

// Validate resolves a user-supplied identifier to a canonical coin and
// returns its quote priced in the given currency. Crypto positions are
// carried in USD regardless of the reporting currency, so callers usually
// pass "usd" here.
func (g *CoinGecko) Validate(input, quoteCurrency string) (Quote, error) {
	coins, err := g.Search(input)
	if err != nil {
		return Quote{}, err
	}
	coin, ok := ResolveCoin(input, coins)
	if !ok {
		return Quote{}, fmt.Errorf("no coin found for %q", input)
	}

	quote := strings.ToLower(quoteCurrency)
	addr := fmt.Sprintf("https://api.coingecko.com/api/v3/coins/%s?localization=false&tickers=false&market_data=true&community_data=false&developer_data=false",
		url.PathEscape(coin.ID))

	var jobj any
	if err := jwget(g.client, addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error fetching coin %q: %w", coin.ID, err)
	}

	path := "$.market_data.current_price." + quote
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Quote{}, fmt.Errorf("error parsing coin %q: %q %w", coin.ID, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	price, ok := jval.(float64)
	if !ok {
		return Quote{}, fmt.Errorf("error parsing coin %q: %q not a float: %v", coin.ID, path, jval)
	}

	return Quote{
		ID:       coin.ID,
		Name:     coin.Name,
		Currency: strings.ToUpper(quoteCurrency),
		Price:    M(price, strings.ToUpper(quoteCurrency)),
	}, nil
}
