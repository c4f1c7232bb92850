//go:build gmp

package numeric

import (
	"github.com/ncw/gmp"
	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
)

// GMP is the arithmetic of GMP-backed integers. *gmp.Int is not part of
// Value, so progress types cannot be instantiated with it directly; callers
// convert at the boundary through these ops or DecimalOf.
var GMP gmpOps

type gmpOps struct{}

func (gmpOps) ToDecimal(v *gmp.Int) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, apperrors.ErrNullOperand
	}
	return decimal.NewFromString(v.String())
}

func (gmpOps) FromDecimal(d decimal.Decimal) (*gmp.Int, error) {
	z, ok := new(gmp.Int).SetString(d.Round(0).String(), 10)
	if !ok {
		return nil, apperrors.NewValueError("value", d, "not representable as gmp.Int")
	}
	return z, nil
}

func (gmpOps) Add(a, b *gmp.Int) (*gmp.Int, error) {
	if a == nil || b == nil {
		return nil, apperrors.ErrNullOperand
	}
	return new(gmp.Int).Add(a, b), nil
}

func (gmpOps) Zero() *gmp.Int { return gmp.NewInt(0) }
func (gmpOps) Name() string   { return "gmp.Int" }

func extendedDecimalOf(v any) (decimal.Decimal, bool, error) {
	z, ok := v.(*gmp.Int)
	if !ok {
		return decimal.Zero, false, nil
	}
	d, err := GMP.ToDecimal(z)
	return d, true, err
}

var _ Ops[*gmp.Int] = gmpOps{}
