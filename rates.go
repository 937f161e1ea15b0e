package assetbook

import "github.com/shopspring/decimal"

// RateTable is an exchange-rate snapshot: for each currency code, the number
// of units of that currency per one unit of the Base currency.
//
// A table is supplied externally for each valuation pass and never cached by
// the engine. The base currency itself is always present with rate 1.
type RateTable struct {
	Base  string
	Rates map[string]decimal.Decimal
}

// NewRateTable creates a rate table against the given base currency.
func NewRateTable(base string) RateTable {
	return RateTable{Base: base, Rates: make(map[string]decimal.Decimal)}
}

// Set records the number of units of currency per one unit of the base.
func (t RateTable) Set(currency string, rate decimal.Decimal) RateTable {
	t.Rates[currency] = rate
	return t
}

// rate returns the units of currency per one base unit.
func (t RateTable) rate(currency string) (decimal.Decimal, error) {
	if currency == t.Base {
		return decimal.NewFromInt(1), nil
	}
	r, ok := t.Rates[currency]
	if !ok {
		return decimal.Decimal{}, &MissingRateError{Currency: currency}
	}
	return r, nil
}

// Rate returns the conversion rate from one currency to another, derived as
// the cross rate to-per-base divided by from-per-base.
func (t RateTable) Rate(from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	num, err := t.rate(to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	den, err := t.rate(from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return num.Div(den), nil
}

// Normalize converts a native-currency amount into the reporting currency
// using the supplied rate table. The identity conversion returns the amount
// unchanged without touching the table.
//
// When a needed currency is absent the call fails with MissingRateError.
// The engine never silently substitutes a default rate: that policy decision
// belongs to the data-acquisition layer, before the table reaches here.
func Normalize(amount Money, reporting string, table RateTable) (Money, error) {
	if amount.Currency() == reporting || amount.Currency() == "" {
		return M(amount.Decimal(), reporting), nil
	}
	rate, err := table.Rate(amount.Currency(), reporting)
	if err != nil {
		return Money{}, err
	}
	return M(amount.Decimal().Mul(rate), reporting), nil
}
