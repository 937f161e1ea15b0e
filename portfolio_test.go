package assetbook

import (
	"errors"
	"testing"
	"time"
)

// setupPortfolio builds the portfolio used by most tests: one US equity
// bought twice and one crypto position.
func setupPortfolio(t *testing.T) *Portfolio {
	t.Helper()
	pf := NewPortfolio()
	if _, err := pf.Buy(Equity, "AAPL", "Apple Inc.", Q(10), USD(100)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if _, err := pf.Buy(Equity, "AAPL", "Apple Inc.", Q(10), USD(120)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if _, err := pf.Buy(Crypto, "bitcoin", "Bitcoin", Q(0.5), USD(40000)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	return pf
}

func TestPortfolio_BuyMergesByAssetID(t *testing.T) {
	pf := setupPortfolio(t)

	if got := pf.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	p, ok := pf.Get(Equity, "AAPL")
	if !ok {
		t.Fatal("Get(AAPL) not found")
	}
	if !p.Quantity.Equal(Q(20)) || !p.AvgCost.Equal(USD(110)) {
		t.Errorf("AAPL = qty %s avg %s, want qty 20 avg US$110.00", p.Quantity, p.AvgCost)
	}
}

func TestPortfolio_SameIDDistinctClasses(t *testing.T) {
	// asset ids are unique per asset class, not globally
	pf := NewPortfolio()
	pf.Buy(Equity, "LINK", "Interlink Electronics", Q(1), USD(5))
	pf.Buy(Crypto, "LINK", "Chainlink", Q(1), USD(15))

	e, _ := pf.Get(Equity, "LINK")
	c, _ := pf.Get(Crypto, "LINK")
	if e.AvgCost.Equal(c.AvgCost) {
		t.Error("positions of distinct classes were merged")
	}
}

func TestPortfolio_SellRealizesPnL(t *testing.T) {
	pf := setupPortfolio(t)
	on := NewDate(2026, time.August, 31)

	event, err := pf.Sell(Equity, "AAPL", Q(5), USD(150), on)
	if err != nil {
		t.Fatalf("Sell() returned unexpected error: %v", err)
	}

	// realized pnl = (150-110)×5 = 200, roi = 200/(110×5)×100 ≈ 36.36%
	if want := USD(200); !event.PnL.Equal(want) {
		t.Errorf("PnL = %s, want %s", event.PnL, want)
	}
	if want := Percent(36.3636); !event.ROI.Equal(want) {
		t.Errorf("ROI = %s, want %s", event.ROI, want)
	}
	if !event.UnitCost.Equal(USD(110)) {
		t.Errorf("UnitCost = %s, want US$110.00", event.UnitCost)
	}
	if event.Date != on || event.Class != Equity || event.Currency != "USD" {
		t.Errorf("event metadata = %+v", event)
	}
	if event.ID == "" {
		t.Error("event has no id")
	}

	p, _ := pf.Get(Equity, "AAPL")
	if !p.Quantity.Equal(Q(15)) || !p.AvgCost.Equal(USD(110)) {
		t.Errorf("after sell: qty %s avg %s, want qty 15 avg US$110.00", p.Quantity, p.AvgCost)
	}
}

func TestPortfolio_SellAllRemovesPosition(t *testing.T) {
	pf := setupPortfolio(t)

	if _, err := pf.Sell(Crypto, "bitcoin", Q(0.5), USD(60000), Today()); err != nil {
		t.Fatalf("Sell() returned unexpected error: %v", err)
	}
	if _, ok := pf.Get(Crypto, "bitcoin"); ok {
		t.Error("position still held after selling the full quantity")
	}
	if got := pf.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestPortfolio_SellErrorsLeaveStateUntouched(t *testing.T) {
	pf := setupPortfolio(t)

	testCases := []struct {
		name string
		sell func() error
		want any
	}{
		{
			name: "oversell",
			sell: func() error {
				_, err := pf.Sell(Equity, "AAPL", Q(100), USD(150), Today())
				return err
			},
			want: new(*InsufficientQuantityError),
		},
		{
			name: "unknown asset",
			sell: func() error {
				_, err := pf.Sell(Equity, "TSLA", Q(1), USD(150), Today())
				return err
			},
			want: new(*InsufficientQuantityError),
		},
		{
			name: "negative price",
			sell: func() error {
				_, err := pf.Sell(Equity, "AAPL", Q(1), USD(-1), Today())
				return err
			},
			want: new(*InvalidInputError),
		},
		{
			name: "negative quantity",
			sell: func() error {
				_, err := pf.Sell(Equity, "AAPL", Q(-1), USD(150), Today())
				return err
			},
			want: new(*InvalidInputError),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sell()
			if err == nil {
				t.Fatal("Sell() succeeded, want error")
			}
			switch target := tc.want.(type) {
			case **InsufficientQuantityError:
				if !errors.As(err, target) {
					t.Errorf("error = %v, want InsufficientQuantityError", err)
				}
			case **InvalidInputError:
				if !errors.As(err, target) {
					t.Errorf("error = %v, want InvalidInputError", err)
				}
			}

			p, ok := pf.Get(Equity, "AAPL")
			if !ok || !p.Quantity.Equal(Q(20)) || !p.AvgCost.Equal(USD(110)) {
				t.Errorf("portfolio modified by rejected sell: %+v", p)
			}
		})
	}
}

func TestPortfolio_PositionsOrder(t *testing.T) {
	pf := setupPortfolio(t)

	var ids []string
	for p := range pf.Positions() {
		ids = append(ids, p.ID)
	}
	// equities first, then crypto, each in insertion order
	if len(ids) != 2 || ids[0] != "AAPL" || ids[1] != "bitcoin" {
		t.Errorf("Positions() order = %v", ids)
	}
}
