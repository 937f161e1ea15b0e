package assetbook

import (
	"fmt"
	"iter"
)

// NetWorthHistory is the dated series of total net worth, one value per
// calendar day, in the reporting currency.
//
// The series only grows at its tail: recording on the latest day replaces
// that day's value, recording on a later day appends, and recording on an
// earlier day is rejected. Repeated valuations within the same day therefore
// never grow the series.
type NetWorthHistory struct {
	days   []Date
	values []Money
}

// NewNetWorthHistory creates an empty history.
func NewNetWorthHistory() *NetWorthHistory {
	return &NetWorthHistory{}
}

// Len returns the number of recorded days.
func (h *NetWorthHistory) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *NetWorthHistory) Latest() (day Date, value Money) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, Money{}
	}
	return h.days[last], h.values[last]
}

// Record stores the net worth for the given day.
//
// Same-day records overwrite the tail entry so the last valuation of a day
// wins; days after the tail append a new entry. Earlier days are rejected:
// this interface does no reordering and no retroactive edits.
func (h *NetWorthHistory) Record(on Date, netWorth Money) error {
	last := len(h.days) - 1
	if last >= 0 {
		if h.days[last] == on {
			h.values[last] = netWorth
			return nil
		}
		if on.Before(h.days[last]) {
			return fmt.Errorf("cannot record net worth on %s: history already reaches %s", on, h.days[last])
		}
	}
	h.days = append(h.days, on)
	h.values = append(h.values, netWorth)
	return nil
}

// Get returns the value recorded on a day, and whether one exists.
func (h *NetWorthHistory) Get(day Date) (Money, bool) {
	for i, d := range h.days {
		if d == day {
			return h.values[i], true
		}
	}
	return Money{}, false
}

// Values returns an iterator over all day/value pairs in chronological order.
func (h *NetWorthHistory) Values() iter.Seq2[Date, Money] {
	return func(yield func(Date, Money) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
