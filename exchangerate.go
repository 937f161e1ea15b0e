package assetbook

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/shopspring/decimal"
)

const exchangerateAPIKey = "EXCHANGERATE_API_KEY"

var exchangerateAPIFlag = flag.String("exchangerate-api-key", "", "exchangerate-api.com key used to fetch currency rates.\n If missing it will read the environment variable \""+exchangerateAPIKey+"\". You can get one at https://www.exchangerate-api.com/")

func exchangerateKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *exchangerateAPIFlag == "" {
		*exchangerateAPIFlag = os.Getenv(exchangerateAPIKey)
	}
	return *exchangerateAPIFlag
}

// ExchangeRateAPI fetches currency rates from exchangerate-api.com.
//
// The service returns, for a base currency, the number of units of every
// other currency per one base unit, which is exactly the RateTable
// convention.
type ExchangeRateAPI struct {
	client *http.Client
}

// NewExchangeRateAPI creates a client with a daily response cache, since the
// free tier refreshes rates once a day anyway.
func NewExchangeRateAPI() *ExchangeRateAPI {
	return &ExchangeRateAPI{client: daily()}
}

// Rates fetches the latest rate table for the given base currency.
func (x *ExchangeRateAPI) Rates(base string) (RateTable, error) {
	key := exchangerateKey()
	if key == "" {
		return RateTable{}, fmt.Errorf("no exchangerate-api key: set --exchangerate-api-key or %s", exchangerateAPIKey)
	}

	addr := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/%s", url.PathEscape(key), url.PathEscape(base))

	var response struct {
		Result          string                     `json:"result"`
		ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
	}
	if err := jwget(x.client, addr, &response); err != nil {
		return RateTable{}, fmt.Errorf("error fetching rates for base %q: %w", base, err)
	}
	if response.Result != "success" {
		return RateTable{}, fmt.Errorf("exchangerate-api returned %q for base %q", response.Result, base)
	}

	table := NewRateTable(base)
	for code, rate := range response.ConversionRates {
		table.Rates[code] = rate
	}
	return table, nil
}
