package assetbook

import "iter"

// RealizedEvent fixes the profit or loss of a single sell, permanently.
// Events are created exactly once, by Portfolio.Sell, and never mutated.
type RealizedEvent struct {
	ID        string // unique event id
	Date      Date
	Name      string
	Class     AssetClass
	Currency  string // native currency the event was settled in
	Quantity  Quantity
	SellPrice Money // unit price obtained at the sale
	UnitCost  Money // average unit cost at the moment of the sale
	PnL       Money
	ROI       Percent
}

// RealizedLedger is the append-only record of all realized events.
type RealizedLedger struct {
	events []RealizedEvent
}

// NewRealizedLedger creates an empty realized ledger.
func NewRealizedLedger() *RealizedLedger {
	return &RealizedLedger{}
}

// Append adds an event to the ledger. Events are never removed.
func (l *RealizedLedger) Append(e RealizedEvent) {
	l.events = append(l.events, e)
}

// Len returns the number of recorded events.
func (l *RealizedLedger) Len() int { return len(l.events) }

// Events returns an iterator over all events in recording order.
func (l *RealizedLedger) Events() iter.Seq[RealizedEvent] {
	return func(yield func(RealizedEvent) bool) {
		for _, e := range l.events {
			if !yield(e) {
				return
			}
		}
	}
}

// Total sums all realized PnL in the reporting currency. Each event is
// converted using its own recorded currency, independent of current live
// positions.
func (l *RealizedLedger) Total(reporting string, rates RateTable) (Money, error) {
	total := M(0, reporting)
	for _, e := range l.events {
		converted, err := Normalize(e.PnL, reporting, rates)
		if err != nil {
			return Money{}, err
		}
		total = total.Add(converted)
	}
	return total, nil
}
