package progress

import (
	"github.com/shopspring/decimal"

	"github.com/agbru/progresskit/numeric"
)

// Erase returns the Source view of p.
//
// A value that cannot be converted to decimal (only possible for a
// foreign Progress implementation holding a nil *big.Int or a NaN) reads
// as a zero current and an unknown max.
func Erase[T numeric.Value](p Progress[T]) Source {
	return erased[T]{p: p}
}

type erased[T numeric.Value] struct {
	p Progress[T]
}

func (e erased[T]) CurrentDecimal() decimal.Decimal {
	d, err := numeric.For[T]().ToDecimal(e.p.CurrentValue())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (e erased[T]) MaxDecimal() (decimal.Decimal, bool) {
	v, known := e.p.MaxValue()
	if !known {
		return decimal.Zero, false
	}
	d, err := numeric.For[T]().ToDecimal(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (e erased[T]) IsFinished() bool { return e.p.IsFinished() }

func (e erased[T]) AddSignal(s Signal) { e.p.AddListener(signalAdapter[T]{s: s}) }

func (e erased[T]) RemoveSignal(s Signal) { e.p.RemoveListener(signalAdapter[T]{s: s}) }

// signalAdapter is a value type: two adapters of the same Signal are equal,
// so RemoveSignal finds the listener AddSignal registered.
type signalAdapter[T numeric.Value] struct {
	s Signal
}

func (a signalAdapter[T]) OnCurrentChanged(T)   { a.s.CurrentChanged() }
func (a signalAdapter[T]) OnMaxChanged(T, bool) { a.s.MaxChanged() }

// Normalized returns current/max of src rounded half up at
// numeric.DivisionPrecision places. It is unknown when the max is unknown
// and exactly 1 when the max is zero.
func Normalized(src Source) (decimal.Decimal, bool) {
	maxValue, known := src.MaxDecimal()
	if !known {
		return decimal.Zero, false
	}
	return numeric.Ratio(src.CurrentDecimal(), maxValue), true
}

var one = decimal.NewFromInt(1)

// finishedSource stands in for a terminated registry entry.
type finishedSource struct{}

func (finishedSource) CurrentDecimal() decimal.Decimal     { return one }
func (finishedSource) MaxDecimal() (decimal.Decimal, bool) { return one, true }
func (finishedSource) IsFinished() bool                    { return true }
func (finishedSource) AddSignal(Signal)                    {}
func (finishedSource) RemoveSignal(Signal)                 {}
