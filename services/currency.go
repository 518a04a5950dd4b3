package services

import "github.com/shopspring/decimal"

// MinorUnits converts a major-unit amount (e.g. dollars) into the smallest
// currency unit (e.g. cents), rounding half away from zero. Plain float
// multiplication truncates values like 19.995 to 1999 instead of 2000, which
// systematically underbills.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
