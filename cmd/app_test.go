package cmd

import (
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/ycwu/assetbook"
)

// pointFilesAt redirects every data file flag into a temporary directory.
func pointFilesAt(t *testing.T, dir string) {
	t.Helper()
	oldPf, oldRe, oldEx, oldHi := *portfolioFile, *realizedFile, *expensesFile, *historyFile
	*portfolioFile = filepath.Join(dir, "portfolio.json")
	*realizedFile = filepath.Join(dir, "realized.jsonl")
	*expensesFile = filepath.Join(dir, "expenses.jsonl")
	*historyFile = filepath.Join(dir, "history.csv")
	t.Cleanup(func() {
		*portfolioFile, *realizedFile, *expensesFile, *historyFile = oldPf, oldRe, oldEx, oldHi
	})
}

func TestPortfolioFileRoundTrip(t *testing.T) {
	pointFilesAt(t, t.TempDir())

	pf, err := DecodePortfolioFile()
	if err != nil {
		t.Fatalf("DecodePortfolioFile() on missing file: %v", err)
	}
	if pf.Len() != 0 {
		t.Fatalf("missing file should load as empty, got %d positions", pf.Len())
	}

	if _, err := pf.Buy(assetbook.Equity, "AAPL", "Apple Inc.", assetbook.Q(10), assetbook.M(100, "USD")); err != nil {
		t.Fatal(err)
	}
	if err := EncodePortfolioFile(pf); err != nil {
		t.Fatal(err)
	}

	loaded, err := DecodePortfolioFile()
	if err != nil {
		t.Fatal(err)
	}
	pos, ok := loaded.Get(assetbook.Equity, "AAPL")
	if !ok {
		t.Fatal("AAPL not found after reload")
	}
	if !pos.Quantity.Equal(assetbook.Q(10)) {
		t.Errorf("reloaded quantity = %s, want 10", pos.Quantity)
	}
}

func TestRealizedFileAppend(t *testing.T) {
	pointFilesAt(t, t.TempDir())

	e := assetbook.RealizedEvent{
		ID:        "test-id",
		Date:      assetbook.MustParseDate("2026-08-30"),
		Name:      "Apple Inc.",
		Class:     assetbook.Equity,
		Currency:  "USD",
		Quantity:  assetbook.Q(5),
		SellPrice: assetbook.M(120, "USD"),
		UnitCost:  assetbook.M(100, "USD"),
		PnL:       assetbook.M(100, "USD"),
		ROI:       assetbook.Percent(20),
	}
	if status := AppendRealizedEvent(e); status != subcommands.ExitSuccess {
		t.Fatalf("AppendRealizedEvent exit status = %v", status)
	}
	if status := AppendRealizedEvent(e); status != subcommands.ExitSuccess {
		t.Fatalf("AppendRealizedEvent exit status = %v", status)
	}

	ledger, err := DecodeRealizedFile()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Errorf("ledger has %d events, want 2", ledger.Len())
	}
}

func TestHistoryFileRoundTrip(t *testing.T) {
	pointFilesAt(t, t.TempDir())

	h, err := DecodeHistoryFile()
	if err != nil {
		t.Fatalf("DecodeHistoryFile() on missing file: %v", err)
	}
	if err := h.Record(assetbook.MustParseDate("2026-08-31"), assetbook.M(100000, *reportingCurrency)); err != nil {
		t.Fatal(err)
	}
	if err := EncodeHistoryFile(h); err != nil {
		t.Fatal(err)
	}

	loaded, err := DecodeHistoryFile()
	if err != nil {
		t.Fatal(err)
	}
	day, value := loaded.Latest()
	if day.String() != "2026-08-31" {
		t.Errorf("latest day = %s, want 2026-08-31", day)
	}
	if !value.Equal(assetbook.M(100000, *reportingCurrency)) {
		t.Errorf("latest value = %s, want 100000", value)
	}
}
