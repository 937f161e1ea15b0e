package assetbook

// TWD is a helper for tests to create New Taiwan dollar money from const
func TWD(v float64) Money { return M(v, "TWD") }

// USD is a helper for tests to create US dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }
