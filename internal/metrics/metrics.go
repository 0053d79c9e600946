// Package metrics derives revenue, cost and profit from quantity/price inputs.
// All functions are pure. Malformed or partial input yields zero, never an
// error: a half-filled sale form must always preview a defined 0.00.
package metrics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Revenue returns qty × price.
func Revenue(qty int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}

// Cost returns qty × buyingPrice.
func Cost(qty int, buyingPrice decimal.Decimal) decimal.Decimal {
	return buyingPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// Profit returns revenue − cost. Inputs are expected unrounded; rounding only
// happens at presentation time so errors never compound across the chain.
func Profit(revenue, cost decimal.Decimal) decimal.Decimal {
	return revenue.Sub(cost)
}

// Amount parses a user-entered amount. Empty, non-numeric or negative input
// maps to zero.
func Amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Quantity parses a user-entered quantity with the same leniency as Amount.
func Quantity(s string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() || !d.IsInteger() {
		return 0
	}
	return int(d.IntPart())
}

// Display formats a value for rendering, always two decimal places.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
