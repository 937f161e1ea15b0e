package assetbook

import (
	"iter"

	"github.com/google/uuid"
)

// Portfolio is the ordered collection of all held positions, partitioned by
// asset class. It is owned exclusively by the accounting engine and mutated
// only through Buy and Sell.
//
// The engine provides no locking: the caller serializes mutations and runs
// at most one in flight at a time.
type Portfolio struct {
	equities []Position
	cryptos  []Position
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{}
}

func (pf *Portfolio) bucket(class AssetClass) *[]Position {
	if class == Crypto {
		return &pf.cryptos
	}
	return &pf.equities
}

// Get returns the position for the given asset, or false when it is not held.
func (pf *Portfolio) Get(class AssetClass, id string) (Position, bool) {
	for _, p := range *pf.bucket(class) {
		if p.ID == id {
			return p, true
		}
	}
	return Position{}, false
}

// Len returns the number of held positions.
func (pf *Portfolio) Len() int { return len(pf.equities) + len(pf.cryptos) }

// Positions returns an iterator over all positions, equities first, each
// bucket in insertion order.
func (pf *Portfolio) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, p := range pf.equities {
			if !yield(p) {
				return
			}
		}
		for _, p := range pf.cryptos {
			if !yield(p) {
				return
			}
		}
	}
}

// Buy records a purchase. The first buy of an asset creates its position;
// subsequent buys merge into the existing one with the weighted-average
// cost-basis formula. The unit price is in the asset's native currency.
func (pf *Portfolio) Buy(class AssetClass, id, name string, quantity Quantity, unitPrice Money) (Position, error) {
	bucket := pf.bucket(class)
	for i, p := range *bucket {
		if p.ID == id {
			updated, err := p.Buy(quantity, unitPrice)
			if err != nil {
				return p, err
			}
			(*bucket)[i] = updated
			return updated, nil
		}
	}

	created, err := Position{ID: id, Name: name, Class: class}.Buy(quantity, unitPrice)
	if err != nil {
		return Position{}, err
	}
	*bucket = append(*bucket, created)
	return created, nil
}

// Sell records a disposal on the given date and returns the RealizedEvent
// that fixes its profit or loss permanently.
//
// The sell price is in the asset's native currency. The cost basis is the
// position's average unit cost at the moment of the sale; a partial sell
// leaves that average unchanged. Selling the full remaining quantity removes
// the position from the portfolio. On any error the portfolio is unmodified.
func (pf *Portfolio) Sell(class AssetClass, id string, quantity Quantity, sellPrice Money, on Date) (RealizedEvent, error) {
	if sellPrice.IsNegative() {
		return RealizedEvent{}, &InvalidInputError{Field: "price", Value: sellPrice.String()}
	}

	bucket := pf.bucket(class)
	for i, p := range *bucket {
		if p.ID != id {
			continue
		}
		updated, costBasis, removed, err := p.Sell(quantity)
		if err != nil {
			return RealizedEvent{}, err
		}

		pnl, roi := ComputePnL(quantity, costBasis, sellPrice)
		event := RealizedEvent{
			ID:        uuid.NewString(),
			Date:      on,
			Name:      p.Name,
			Class:     p.Class,
			Currency:  cur(costBasis, sellPrice),
			Quantity:  quantity,
			SellPrice: sellPrice,
			UnitCost:  costBasis,
			PnL:       pnl,
			ROI:       roi,
		}

		if removed {
			*bucket = append((*bucket)[:i], (*bucket)[i+1:]...)
		} else {
			(*bucket)[i] = updated
		}
		return event, nil
	}

	return RealizedEvent{}, &InsufficientQuantityError{Asset: id, Held: Q(0), Requested: quantity}
}
