package assetbook

import (
	"iter"
	"sort"
)

// Expense is a single household spending record, kept alongside the
// portfolio so the dashboard can break down spending next to asset totals.
type Expense struct {
	Date     Date
	Amount   Money
	Category string
}

// ExpenseLedger is the append-only record of expenses.
type ExpenseLedger struct {
	expenses []Expense
}

// NewExpenseLedger creates an empty expense ledger.
func NewExpenseLedger() *ExpenseLedger {
	return &ExpenseLedger{}
}

// Append adds an expense record. Negative amounts are rejected.
func (l *ExpenseLedger) Append(e Expense) error {
	if e.Amount.IsNegative() {
		return &InvalidInputError{Field: "amount", Value: e.Amount.String()}
	}
	l.expenses = append(l.expenses, e)
	return nil
}

// Len returns the number of recorded expenses.
func (l *ExpenseLedger) Len() int { return len(l.expenses) }

// Expenses returns an iterator over all records in recording order.
func (l *ExpenseLedger) Expenses() iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range l.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

// CategoryTotal is the spending of one category in the reporting currency.
type CategoryTotal struct {
	Category string
	Total    Money
}

// ByCategory sums all expenses per category, converted to the reporting
// currency, sorted by descending total.
func (l *ExpenseLedger) ByCategory(reporting string, rates RateTable) ([]CategoryTotal, error) {
	totals := make(map[string]Money)
	for _, e := range l.expenses {
		converted, err := Normalize(e.Amount, reporting, rates)
		if err != nil {
			return nil, err
		}
		totals[e.Category] = totals[e.Category].Add(converted)
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total.Equal(result[j].Total) {
			return result[i].Category < result[j].Category
		}
		return result[j].Total.LessThan(result[i].Total)
	})
	return result, nil
}
