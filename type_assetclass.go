package assetbook

import (
	"encoding/json"
	"fmt"
)

// AssetClass partitions the portfolio into equities and cryptocurrencies.
type AssetClass int

const (
	// Equity is a listed stock, identified by its ticker symbol.
	Equity AssetClass = iota
	// Crypto is a cryptocurrency, identified by its CoinGecko id.
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case Equity:
		return "equity"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "equity", "stock":
		return Equity, nil
	case "crypto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for AssetClass.
func (c AssetClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for AssetClass.
func (c *AssetClass) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAssetClass(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
