package assetbook

// Position is a single holding: a quantity of one asset and the
// weighted-average unit cost paid for it, in the asset's native currency.
//
// A Position is a value: Buy and Sell return updated copies, they never
// mutate the receiver. A position with zero quantity does not exist in a
// Portfolio; its average cost is defined as zero.
type Position struct {
	ID       string     // unique per asset class (ticker symbol or coin id)
	Name     string     // display name
	Class    AssetClass // Equity or Crypto
	Quantity Quantity
	AvgCost  Money // weighted-average unit cost, in the native currency
}

// Currency returns the position's native currency.
func (p Position) Currency() string { return p.AvgCost.Currency() }

// Invested returns the total capital invested in the position, in the
// native currency: quantity times average unit cost.
func (p Position) Invested() Money { return p.AvgCost.Mul(p.Quantity) }

// Buy merges a purchase into the position and returns the updated position.
//
// The new average cost is the quantity-weighted mean of the old average cost
// and the incoming unit price:
//
//	(oldQty×oldAvg + qty×price) / (oldQty + qty)
//
// Buying into a zero position simply takes the incoming quantity and price.
// Negative quantities and prices are rejected with InvalidInputError.
func (p Position) Buy(quantity Quantity, unitPrice Money) (Position, error) {
	if quantity.IsNegative() {
		return p, &InvalidInputError{Field: "quantity", Value: quantity.String()}
	}
	if unitPrice.IsNegative() {
		return p, &InvalidInputError{Field: "price", Value: unitPrice.String()}
	}

	total := p.Quantity.Add(quantity)
	if total.IsZero() {
		// Cannot happen for a genuine buy, but guards the division below.
		p.Quantity = total
		p.AvgCost = M(0, cur(p.AvgCost, unitPrice))
		return p, nil
	}

	oldValue := p.AvgCost.Mul(p.Quantity)
	newValue := unitPrice.Mul(quantity)
	p.AvgCost = oldValue.Add(newValue).Div(total)
	p.Quantity = total
	return p, nil
}

// Sell reduces the position by the sold quantity and returns the updated
// position together with the average unit cost at the moment of the sale,
// which is the cost basis for the realized PnL.
//
// The weighted-average method never recomputes the basis on disposal: a
// partial sell leaves AvgCost untouched and only reduces the quantity.
// Selling more than held is rejected with InsufficientQuantityError and the
// position is left unchanged. When the remaining quantity is zero the
// returned removed flag tells the Portfolio to drop the position.
func (p Position) Sell(quantity Quantity) (updated Position, costBasis Money, removed bool, err error) {
	if quantity.IsNegative() {
		return p, Money{}, false, &InvalidInputError{Field: "quantity", Value: quantity.String()}
	}
	if quantity.GreaterThan(p.Quantity) {
		return p, Money{}, false, &InsufficientQuantityError{Asset: p.ID, Held: p.Quantity, Requested: quantity}
	}

	costBasis = p.AvgCost
	p.Quantity = p.Quantity.Sub(quantity)
	return p, costBasis, p.Quantity.IsZero(), nil
}
