package numeric

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Ratio returns cur/total rounded half up to DivisionPrecision places. A zero
// total yields exactly 1: an empty range is complete.
func Ratio(cur, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.NewFromInt(1)
	}
	return cur.DivRound(total, DivisionPrecision)
}

// IntegerPercentage returns the floored percentage of cur relative to total,
// clamped to [0, 100].
func IntegerPercentage(cur, total decimal.Decimal) int {
	if total.IsZero() {
		return 100
	}
	pct := cur.Mul(hundred).Div(total).Floor()
	switch {
	case pct.IsNegative():
		return 0
	case pct.GreaterThan(hundred):
		return 100
	}
	return int(pct.IntPart())
}
