package assetbook

// ComputePnL computes the profit or loss of holding a quantity of an asset
// bought at unitCost and valued (or sold) at refPrice, together with the
// return on the invested capital.
//
//	pnl = (refPrice − unitCost) × quantity
//	roi = pnl / (unitCost × quantity) × 100, or 0 when nothing was invested
//
// The same arithmetic serves both figures: with the current market price it
// yields the live unrealized PnL, with the sell price it yields the realized
// PnL that gets recorded as a RealizedEvent. All three inputs are in the
// asset's native currency.
func ComputePnL(quantity Quantity, unitCost, refPrice Money) (pnl Money, roi Percent) {
	pnl = refPrice.Sub(unitCost).Mul(quantity)
	invested := unitCost.Mul(quantity)
	if !invested.IsPositive() {
		return pnl, 0
	}
	ratio := pnl.Decimal().Div(invested.Decimal())
	return pnl, Percent(ratio.InexactFloat64() * 100)
}
