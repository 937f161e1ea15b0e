package assetbook

import "fmt"

// The engine rejects bad inputs instead of coercing them, and it never
// substitutes defaults for missing market data: that policy belongs to the
// data-acquisition layer in cmd, before the engine is called. All errors
// here are plain computation failures that propagate to the caller.

// MissingRateError reports a currency absent from a rate table.
// The caller decides on a fallback rate; the engine never does.
type MissingRateError struct {
	Currency string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate for currency %q", e.Currency)
}

// InsufficientQuantityError reports a sell that exceeds the held quantity.
// The sell is rejected whole: no partial execution.
type InsufficientQuantityError struct {
	Asset     string
	Held      Quantity
	Requested Quantity
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("cannot sell %s of %q: only %s held", e.Requested, e.Asset, e.Held)
}

// InvalidInputError reports a negative quantity or price supplied to a
// mutating operation. Rejected before any ledger mutation.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Value)
}
