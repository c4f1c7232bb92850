package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agbru/progresskit/numeric"
)

// Predictor predicts a value of type T at a given instant.
type Predictor[T numeric.Value] interface {
	PredictValueAt(ts time.Time) (T, error)
}

// DecimalPredictor predicts a value at a given instant without converting
// it back to its representation. The Solver consumes this form.
type DecimalPredictor interface {
	PredictDecimalAt(ts time.Time) (decimal.Decimal, error)
}

// Constant is a predictor whose value never changes, typically a fixed max.
type Constant[T numeric.Value] struct {
	value T
}

// NewConstant returns a predictor always answering v.
func NewConstant[T numeric.Value](v T) Constant[T] {
	return Constant[T]{value: v}
}

// PredictValueAt returns the constant.
func (c Constant[T]) PredictValueAt(time.Time) (T, error) { return c.value, nil }

// PredictDecimalAt returns the constant as a decimal.
func (c Constant[T]) PredictDecimalAt(time.Time) (decimal.Decimal, error) {
	return numeric.For[T]().ToDecimal(c.value)
}
