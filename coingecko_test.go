package assetbook

import "testing"

func TestResolveCoin(t *testing.T) {
	coins := []CoinResult{
		{ID: "bitcoin-cash", Name: "Bitcoin Cash", Symbol: "BCH"},
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC"},
		{ID: "wrapped-bitcoin", Name: "Wrapped Bitcoin", Symbol: "WBTC"},
	}

	testCases := []struct {
		name   string
		query  string
		wantID string
	}{
		// exact symbol match wins, case-insensitive
		{"symbol match", "btc", "bitcoin"},
		{"symbol match uppercase", "WBTC", "wrapped-bitcoin"},
		// then exact id match
		{"id match", "bitcoin-cash", "bitcoin-cash"},
		// then the first result
		{"fallback to first", "bit", "bitcoin-cash"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveCoin(tc.query, coins)
			if !ok {
				t.Fatal("ResolveCoin() found nothing")
			}
			if got.ID != tc.wantID {
				t.Errorf("ResolveCoin(%q) = %q, want %q", tc.query, got.ID, tc.wantID)
			}
		})
	}
}

func TestResolveCoin_Empty(t *testing.T) {
	if _, ok := ResolveCoin("btc", nil); ok {
		t.Error("ResolveCoin() resolved against no results")
	}
}
