package assetbook

// Quote is the result of validating a user-supplied asset identifier
// against a provider: the canonical id, a display name, and the current
// unit price in the asset's native currency.
type Quote struct {
	ID       string // canonical identifier (ticker or coin id)
	Name     string
	Currency string
	Price    Money
}

// PriceProvider resolves the current native unit price of one asset.
// Implementations do network I/O; the accounting engine never calls them
// directly, the data-acquisition layer in cmd does and assembles the
// PriceTable snapshot before aggregation.
type PriceProvider interface {
	Price(id string) (Money, error)
}

// RateProvider fetches an exchange-rate table against a base currency.
type RateProvider interface {
	Rates(base string) (RateTable, error)
}
