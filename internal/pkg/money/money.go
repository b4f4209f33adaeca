// Package money holds the price arithmetic shared by cart and checkout.
package money

import "github.com/shopspring/decimal"

// LineTotal is price × quantity, unrounded.
func LineTotal(price float64, qty int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty)))
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
