// Package money holds the fixed-point arithmetic used for wallet balances.
// Amounts are decimal with two fractional digits end to end; they are stored
// as NUMERIC in the database and never pass through float64 once parsed.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to two decimal places, half up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FromFloat converts a request amount into a two-decimal fixed-point value.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// Format renders an amount with exactly two decimals, e.g. "150.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Zero is the initial wallet balance.
func Zero() decimal.Decimal {
	return decimal.Zero
}
