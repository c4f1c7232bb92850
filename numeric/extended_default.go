//go:build !gmp

package numeric

import "github.com/shopspring/decimal"

func extendedDecimalOf(any) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}
