package assetbook

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// twdTable is the usual snapshot: rates against a TWD base.
func twdTable() RateTable {
	return NewRateTable("TWD").
		Set("USD", decimal.NewFromFloat(0.032)).
		Set("EUR", decimal.NewFromFloat(0.029))
}

func TestNormalize_Identity(t *testing.T) {
	// normalize(x, A, A, *) = x, whatever the table contains
	for _, amount := range []Money{TWD(100), USD(42.5), M(0, "EUR")} {
		got, err := Normalize(amount, amount.Currency(), NewRateTable("JPY"))
		if err != nil {
			t.Fatalf("Normalize(%s) returned unexpected error: %v", amount, err)
		}
		if !got.Equal(amount) {
			t.Errorf("Normalize(%s) = %s, want identity", amount, got)
		}
	}
}

func TestNormalize_ToBase(t *testing.T) {
	// 100 USD at 0.032 USD per TWD = 3125 TWD
	got, err := Normalize(USD(100), "TWD", twdTable())
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}
	if want := TWD(3125); !got.Equal(want) {
		t.Errorf("Normalize() = %s, want %s", got, want)
	}
}

func TestNormalize_CrossRate(t *testing.T) {
	// USD→EUR through the TWD base: 0.029/0.032
	got, err := Normalize(USD(32), "EUR", twdTable())
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}
	if want := M(29, "EUR"); !got.Equal(want) {
		t.Errorf("Normalize() = %s, want %s", got, want)
	}
}

func TestNormalize_USDBaseTable(t *testing.T) {
	// the worked conversion from the other direction: a USD-base table
	// carrying TWD per USD
	table := NewRateTable("USD").Set("TWD", decimal.NewFromInt(31))
	got, err := Normalize(USD(2200), "TWD", table)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}
	if want := TWD(68200); !got.Equal(want) {
		t.Errorf("Normalize() = %s, want %s", got, want)
	}
}

func TestNormalize_MissingRate(t *testing.T) {
	testCases := []struct {
		name         string
		amount       Money
		reporting    string
		wantCurrency string
	}{
		{"native currency absent", M(100, "GBP"), "TWD", "GBP"},
		{"reporting currency absent", USD(100), "JPY", "JPY"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.amount, tc.reporting, twdTable())
			var missing *MissingRateError
			if !errors.As(err, &missing) {
				t.Fatalf("Normalize() error = %v, want MissingRateError", err)
			}
			if missing.Currency != tc.wantCurrency {
				t.Errorf("missing currency = %q, want %q", missing.Currency, tc.wantCurrency)
			}
		})
	}
}

func TestRateTable_Rate(t *testing.T) {
	table := twdTable()

	if r, err := table.Rate("TWD", "TWD"); err != nil || !r.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Rate(TWD,TWD) = %s, %v; want 1", r, err)
	}
	// base is implicitly present with rate 1
	if r, err := table.Rate("TWD", "USD"); err != nil || !r.Equal(decimal.NewFromFloat(0.032)) {
		t.Errorf("Rate(TWD,USD) = %s, %v; want 0.032", r, err)
	}
}
