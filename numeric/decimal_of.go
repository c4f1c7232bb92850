package numeric

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
)

// DecimalOf converts a value whose type is only known at run time. Values of
// a type outside Value fail with ErrUnsupportedNumericType.
func DecimalOf(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case int:
		return For[int]().ToDecimal(x)
	case int8:
		return For[int8]().ToDecimal(x)
	case int16:
		return For[int16]().ToDecimal(x)
	case int32:
		return For[int32]().ToDecimal(x)
	case int64:
		return For[int64]().ToDecimal(x)
	case uint:
		return For[uint]().ToDecimal(x)
	case uint8:
		return For[uint8]().ToDecimal(x)
	case uint16:
		return For[uint16]().ToDecimal(x)
	case uint32:
		return For[uint32]().ToDecimal(x)
	case uint64:
		return For[uint64]().ToDecimal(x)
	case float32:
		return For[float32]().ToDecimal(x)
	case float64:
		return For[float64]().ToDecimal(x)
	case *big.Int:
		return For[*big.Int]().ToDecimal(x)
	case decimal.Decimal:
		return x, nil
	case nil:
		return decimal.Zero, apperrors.ErrNullOperand
	}
	if d, ok, err := extendedDecimalOf(v); ok {
		return d, err
	}
	return decimal.Zero, fmt.Errorf("%w: %T", apperrors.ErrUnsupportedNumericType, v)
}
