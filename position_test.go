package assetbook

import (
	"errors"
	"testing"
)

func TestPosition_Buy_WeightedAverage(t *testing.T) {
	testCases := []struct {
		name     string
		buys     []struct{ qty, price float64 }
		wantQty  Quantity
		wantAvg  Money
	}{
		{
			name:    "first buy takes incoming price",
			buys:    []struct{ qty, price float64 }{{10, 100}},
			wantQty: Q(10),
			wantAvg: USD(100),
		},
		{
			name:    "second buy merges into the average",
			buys:    []struct{ qty, price float64 }{{10, 100}, {10, 120}},
			wantQty: Q(20),
			wantAvg: USD(110),
		},
		{
			name:    "uneven weights",
			buys:    []struct{ qty, price float64 }{{1, 100}, {3, 200}},
			wantQty: Q(4),
			wantAvg: USD(175),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Position
			var err error
			for _, b := range tc.buys {
				p, err = p.Buy(Q(b.qty), USD(b.price))
				if err != nil {
					t.Fatalf("Buy() returned unexpected error: %v", err)
				}
			}
			if !p.Quantity.Equal(tc.wantQty) {
				t.Errorf("Quantity = %s, want %s", p.Quantity, tc.wantQty)
			}
			if !p.AvgCost.Equal(tc.wantAvg) {
				t.Errorf("AvgCost = %s, want %s", p.AvgCost, tc.wantAvg)
			}
		})
	}
}

func TestPosition_Buy_OrderIndependent(t *testing.T) {
	// The weighted average is (Σ qty×price)/(Σ qty) whatever the buy order.
	buys := []struct{ qty, price float64 }{{10, 100}, {5, 50}, {2, 310}}

	forward := Position{}
	for _, b := range buys {
		forward, _ = forward.Buy(Q(b.qty), TWD(b.price))
	}
	backward := Position{}
	for i := len(buys) - 1; i >= 0; i-- {
		backward, _ = backward.Buy(Q(buys[i].qty), TWD(buys[i].price))
	}

	if !forward.AvgCost.Equal(backward.AvgCost) {
		t.Errorf("average cost depends on buy order: %s vs %s", forward.AvgCost, backward.AvgCost)
	}
	// (10×100 + 5×50 + 2×310) / 17 = 1870/17 = 110
	if want := TWD(110); !forward.AvgCost.Equal(want) {
		t.Errorf("AvgCost = %s, want %s", forward.AvgCost, want)
	}
}

func TestPosition_Buy_RejectsNegativeInputs(t *testing.T) {
	p := Position{ID: "AAPL", Quantity: Q(10), AvgCost: USD(100)}

	var invalid *InvalidInputError
	if _, err := p.Buy(Q(-1), USD(100)); !errors.As(err, &invalid) {
		t.Errorf("Buy(negative quantity) error = %v, want InvalidInputError", err)
	}
	if _, err := p.Buy(Q(1), USD(-100)); !errors.As(err, &invalid) {
		t.Errorf("Buy(negative price) error = %v, want InvalidInputError", err)
	}
}

func TestPosition_Sell_KeepsAverageCost(t *testing.T) {
	p := Position{ID: "AAPL", Quantity: Q(20), AvgCost: USD(110)}

	updated, costBasis, removed, err := p.Sell(Q(5))
	if err != nil {
		t.Fatalf("Sell() returned unexpected error: %v", err)
	}
	if removed {
		t.Error("partial sell marked the position for removal")
	}
	if !costBasis.Equal(USD(110)) {
		t.Errorf("cost basis at sale = %s, want %s", costBasis, USD(110))
	}
	if !updated.Quantity.Equal(Q(15)) {
		t.Errorf("Quantity = %s, want 15", updated.Quantity)
	}
	// A partial sell never recomputes the basis.
	if !updated.AvgCost.Equal(USD(110)) {
		t.Errorf("AvgCost = %s, want unchanged %s", updated.AvgCost, USD(110))
	}
}

func TestPosition_Sell_FullQuantityRemoves(t *testing.T) {
	p := Position{ID: "bitcoin", Class: Crypto, Quantity: Q(0.5), AvgCost: USD(40000)}

	updated, _, removed, err := p.Sell(Q(0.5))
	if err != nil {
		t.Fatalf("Sell() returned unexpected error: %v", err)
	}
	if !removed {
		t.Error("selling the full quantity did not mark the position for removal")
	}
	if !updated.Quantity.IsZero() {
		t.Errorf("Quantity = %s, want 0", updated.Quantity)
	}
}

func TestPosition_Sell_Oversell(t *testing.T) {
	p := Position{ID: "AAPL", Quantity: Q(10), AvgCost: USD(100)}

	updated, _, _, err := p.Sell(Q(11))
	var insufficient *InsufficientQuantityError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Sell() error = %v, want InsufficientQuantityError", err)
	}
	if !insufficient.Held.Equal(Q(10)) || !insufficient.Requested.Equal(Q(11)) {
		t.Errorf("error holds held=%s requested=%s, want 10 and 11", insufficient.Held, insufficient.Requested)
	}
	// rejected whole: no partial execution
	if !updated.Quantity.Equal(Q(10)) || !updated.AvgCost.Equal(USD(100)) {
		t.Errorf("position modified by rejected sell: %+v", updated)
	}
}

func TestPosition_Buy_ZeroTotalGuard(t *testing.T) {
	var p Position
	updated, err := p.Buy(Q(0), USD(100))
	if err != nil {
		t.Fatalf("Buy() returned unexpected error: %v", err)
	}
	if !updated.AvgCost.IsZero() {
		t.Errorf("AvgCost = %s, want 0 when total quantity is 0", updated.AvgCost)
	}
}
