package numeric

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
)

type signedInt interface {
	int | int8 | int16 | int32 | int64
}

type unsignedInt interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type signedOps[T signedInt] struct {
	name     string
	min, max int64
}

func (o signedOps[T]) ToDecimal(v T) (decimal.Decimal, error) {
	return decimal.NewFromInt(int64(v)), nil
}

func (o signedOps[T]) FromDecimal(d decimal.Decimal) (T, error) {
	r := d.Round(0)
	if r.LessThan(decimal.NewFromInt(o.min)) || r.GreaterThan(decimal.NewFromInt(o.max)) {
		return 0, outOfRange(d, o.name)
	}
	return T(r.IntPart()), nil
}

func (o signedOps[T]) Add(a, b T) (T, error) {
	sum := int64(a) + int64(b)
	// Overflow of the int64 intermediate flips the sign.
	if (b > 0 && sum < int64(a)) || (b < 0 && sum > int64(a)) || sum < o.min || sum > o.max {
		return 0, apperrors.NewValueError("sum", decimal.NewFromInt(int64(a)).Add(decimal.NewFromInt(int64(b))),
			"exceeds the range of %s", o.name)
	}
	return T(sum), nil
}

func (o signedOps[T]) Zero() T      { return 0 }
func (o signedOps[T]) Name() string { return o.name }

type unsignedOps[T unsignedInt] struct {
	name string
	max  uint64
}

func (o unsignedOps[T]) ToDecimal(v T) (decimal.Decimal, error) {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
}

func (o unsignedOps[T]) FromDecimal(d decimal.Decimal) (T, error) {
	r := d.Round(0)
	if r.IsNegative() || r.GreaterThan(decimal.NewFromBigInt(new(big.Int).SetUint64(o.max), 0)) {
		return 0, outOfRange(d, o.name)
	}
	return T(r.BigInt().Uint64()), nil
}

func (o unsignedOps[T]) Add(a, b T) (T, error) {
	sum := uint64(a) + uint64(b)
	if sum < uint64(a) || sum > o.max {
		total := new(big.Int).Add(new(big.Int).SetUint64(uint64(a)), new(big.Int).SetUint64(uint64(b)))
		return 0, apperrors.NewValueError("sum", total, "exceeds the range of %s", o.name)
	}
	return T(sum), nil
}

func (o unsignedOps[T]) Zero() T      { return 0 }
func (o unsignedOps[T]) Name() string { return o.name }

type float64Ops struct{}

func (float64Ops) ToDecimal(v float64) (decimal.Decimal, error) {
	if err := checkFinite(v, "float64"); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(v), nil
}

func (float64Ops) FromDecimal(d decimal.Decimal) (float64, error) {
	f, _ := d.Float64()
	if err := checkFinite(f, "float64"); err != nil {
		return 0, err
	}
	return f, nil
}

func (float64Ops) Add(a, b float64) (float64, error) {
	sum := a + b
	if err := checkFinite(sum, "float64"); err != nil {
		return 0, err
	}
	return sum, nil
}

func (float64Ops) Zero() float64 { return 0 }
func (float64Ops) Name() string  { return "float64" }

type float32Ops struct{}

func (float32Ops) ToDecimal(v float32) (decimal.Decimal, error) {
	if err := checkFinite(float64(v), "float32"); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat32(v), nil
}

func (float32Ops) FromDecimal(d decimal.Decimal) (float32, error) {
	f, _ := d.Float64()
	if err := checkFinite(float64(float32(f)), "float32"); err != nil {
		return 0, err
	}
	return float32(f), nil
}

func (float32Ops) Add(a, b float32) (float32, error) {
	sum := a + b
	if err := checkFinite(float64(sum), "float32"); err != nil {
		return 0, err
	}
	return sum, nil
}

func (float32Ops) Zero() float32 { return 0 }
func (float32Ops) Name() string  { return "float32" }

type bigIntOps struct{}

func (bigIntOps) ToDecimal(v *big.Int) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, apperrors.ErrNullOperand
	}
	return decimal.NewFromBigInt(v, 0), nil
}

func (bigIntOps) FromDecimal(d decimal.Decimal) (*big.Int, error) {
	return d.Round(0).BigInt(), nil
}

func (bigIntOps) Add(a, b *big.Int) (*big.Int, error) {
	if a == nil || b == nil {
		return nil, apperrors.ErrNullOperand
	}
	return new(big.Int).Add(a, b), nil
}

func (bigIntOps) Zero() *big.Int { return new(big.Int) }
func (bigIntOps) Name() string   { return "big.Int" }

type decimalOps struct{}

func (decimalOps) ToDecimal(v decimal.Decimal) (decimal.Decimal, error) {
	return v, nil
}

func (decimalOps) FromDecimal(d decimal.Decimal) (decimal.Decimal, error) {
	return d, nil
}

func (decimalOps) Add(a, b decimal.Decimal) (decimal.Decimal, error) {
	return a.Add(b), nil
}

func (decimalOps) Zero() decimal.Decimal { return decimal.Zero }
func (decimalOps) Name() string          { return "decimal" }

func checkFinite(f float64, name string) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return apperrors.NewValueError("value", f, "not a finite %s", name)
	}
	return nil
}

func outOfRange(d decimal.Decimal, name string) error {
	return apperrors.NewValueError("value", d, "exceeds the range of %s", name)
}
