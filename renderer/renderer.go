// Package renderer turns accounting reports into markdown documents for the
// terminal. It only formats: all numbers arrive already computed and already
// converted by the accounting engine.
package renderer

import (
	"github.com/ycwu/assetbook"
)

// money renders a monetary value or "-" for the zero value, so tables stay
// readable when a column does not apply.
func money(m assetbook.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}
