package numeric

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Value is the closed set of supported numeric representations.
type Value interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		*big.Int | decimal.Decimal
}

// DivisionPrecision is the number of decimal places kept by every division
// performed by the module. Results are rounded half up.
const DivisionPrecision int32 = 20

// Ops is the arithmetic needed by progress values of type T.
type Ops[T any] interface {
	// ToDecimal converts v exactly. A nil *big.Int fails with
	// ErrNullOperand, NaN and infinities with ErrInvalidValue.
	ToDecimal(v T) (decimal.Decimal, error)
	// FromDecimal converts d back to T. Integer representations round half
	// away from zero and fail with ErrInvalidValue when out of range.
	FromDecimal(d decimal.Decimal) (T, error)
	// Add returns a+b, failing when the sum does not fit T.
	Add(a, b T) (T, error)
	// Zero returns the additive identity of T.
	Zero() T
	// Name returns the representation name, used in logs and errors.
	Name() string
}

// For returns the Ops of T.
func For[T Value]() Ops[T] {
	var zero T
	var ops any
	switch any(zero).(type) {
	case int:
		ops = signedOps[int]{name: "int", min: math.MinInt, max: math.MaxInt}
	case int8:
		ops = signedOps[int8]{name: "int8", min: -1 << 7, max: 1<<7 - 1}
	case int16:
		ops = signedOps[int16]{name: "int16", min: -1 << 15, max: 1<<15 - 1}
	case int32:
		ops = signedOps[int32]{name: "int32", min: -1 << 31, max: 1<<31 - 1}
	case int64:
		ops = signedOps[int64]{name: "int64", min: -1 << 63, max: 1<<63 - 1}
	case uint:
		ops = unsignedOps[uint]{name: "uint", max: math.MaxUint}
	case uint8:
		ops = unsignedOps[uint8]{name: "uint8", max: 1<<8 - 1}
	case uint16:
		ops = unsignedOps[uint16]{name: "uint16", max: 1<<16 - 1}
	case uint32:
		ops = unsignedOps[uint32]{name: "uint32", max: 1<<32 - 1}
	case uint64:
		ops = unsignedOps[uint64]{name: "uint64", max: 1<<64 - 1}
	case float32:
		ops = float32Ops{}
	case float64:
		ops = float64Ops{}
	case *big.Int:
		ops = bigIntOps{}
	case decimal.Decimal:
		ops = decimalOps{}
	}
	// Value is a closed set, so the switch above always matches.
	return ops.(Ops[T])
}
