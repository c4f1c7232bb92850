package progress

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/numeric"
)

// Manual is a progress updated explicitly through its setters. Every
// setter validates 0 <= current <= max before writing and notifies the
// listeners on success.
//
// Manual is safe for concurrent use.
type Manual[T numeric.Value] struct {
	ops numeric.Ops[T]

	// update serializes validate-write-notify sequences. mu only guards
	// the values, so listeners can read them during dispatch.
	update sync.Mutex
	mu     sync.RWMutex

	current T
	max     T
	hasMax  bool

	listeners notifier[Listener[T]]
}

// NewManual creates a progress starting at start with a known max. An
// absent maxValue (a nil *big.Int) leaves the max unknown.
func NewManual[T numeric.Value](start, maxValue T) (*Manual[T], error) {
	m := &Manual[T]{ops: numeric.For[T]()}
	if m.absent(maxValue) {
		return NewUnboundedManual(start)
	}
	if err := m.validateMax(maxValue, start); err != nil {
		return nil, err
	}
	if err := m.validateCurrent(start, maxValue, true); err != nil {
		return nil, err
	}
	m.current, m.max, m.hasMax = start, maxValue, true
	return m, nil
}

// NewUnboundedManual creates a progress starting at start with an unknown
// max.
func NewUnboundedManual[T numeric.Value](start T) (*Manual[T], error) {
	m := &Manual[T]{ops: numeric.For[T]()}
	var zero T
	if err := m.validateCurrent(start, zero, false); err != nil {
		return nil, err
	}
	m.current = start
	return m, nil
}

// CurrentValue returns the current value.
func (m *Manual[T]) CurrentValue() T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// MaxValue returns the max and whether it is known.
func (m *Manual[T]) MaxValue() (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.max, m.hasMax
}

// IsFinished reports whether the max is known and reached.
func (m *Manual[T]) IsFinished() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.finishedLocked()
}

func (m *Manual[T]) finishedLocked() bool {
	if !m.hasMax {
		return false
	}
	cur, err := m.ops.ToDecimal(m.current)
	if err != nil {
		return false
	}
	top, err := m.ops.ToDecimal(m.max)
	if err != nil {
		return false
	}
	return cur.Equal(top)
}

// AddListener subscribes l.
func (m *Manual[T]) AddListener(l Listener[T]) { m.listeners.add(l) }

// RemoveListener unsubscribes l.
func (m *Manual[T]) RemoveListener(l Listener[T]) { m.listeners.remove(l) }

// SetCurrent sets the current value. It fails with ErrInvalidValue when v is
// negative or above a known max.
func (m *Manual[T]) SetCurrent(v T) error {
	m.update.Lock()
	defer m.update.Unlock()
	return m.setCurrentLocked(v)
}

func (m *Manual[T]) setCurrentLocked(v T) error {
	m.mu.RLock()
	maxValue, hasMax := m.max, m.hasMax
	m.mu.RUnlock()
	if err := m.validateCurrent(v, maxValue, hasMax); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = v
	m.mu.Unlock()
	m.listeners.dispatch(func(l Listener[T]) { l.OnCurrentChanged(v) })
	return nil
}

// Add increments the current value by delta, which may be negative as long
// as the result stays within range.
func (m *Manual[T]) Add(delta T) error {
	m.update.Lock()
	defer m.update.Unlock()
	m.mu.RLock()
	cur := m.current
	m.mu.RUnlock()
	next, err := m.ops.Add(cur, delta)
	if err != nil {
		return err
	}
	return m.setCurrentLocked(next)
}

// SetMax sets a known max. It fails with ErrInvalidValue when v is negative
// or below the current value. An absent v (a nil *big.Int) clears the max.
func (m *Manual[T]) SetMax(v T) error {
	m.update.Lock()
	defer m.update.Unlock()
	if m.absent(v) {
		m.clearMaxLocked()
		return nil
	}
	return m.setMaxLocked(v)
}

func (m *Manual[T]) setMaxLocked(v T) error {
	m.mu.RLock()
	cur := m.current
	m.mu.RUnlock()
	if err := m.validateMax(v, cur); err != nil {
		return err
	}
	m.mu.Lock()
	m.max, m.hasMax = v, true
	m.mu.Unlock()
	m.listeners.dispatch(func(l Listener[T]) { l.OnMaxChanged(v, true) })
	return nil
}

// ClearMax makes the max unknown.
func (m *Manual[T]) ClearMax() {
	m.update.Lock()
	defer m.update.Unlock()
	m.clearMaxLocked()
}

func (m *Manual[T]) clearMaxLocked() {
	var zero T
	m.mu.Lock()
	m.max, m.hasMax = zero, false
	m.mu.Unlock()
	m.listeners.dispatch(func(l Listener[T]) { l.OnMaxChanged(zero, false) })
}

// Finish completes the progress: an unknown max becomes the current value,
// otherwise the current value jumps to the max.
func (m *Manual[T]) Finish() error {
	m.update.Lock()
	defer m.update.Unlock()
	m.mu.RLock()
	cur, maxValue, hasMax := m.current, m.max, m.hasMax
	m.mu.RUnlock()
	if hasMax {
		return m.setCurrentLocked(maxValue)
	}
	return m.setMaxLocked(cur)
}

// Source returns the type-erased view of m.
func (m *Manual[T]) Source() Source { return Erase[T](m) }

// String renders m as "current/max (pct%)", or "current" when the max is
// unknown.
func (m *Manual[T]) String() string { return formatSource(m.Source()) }

// absent reports whether v is the absent value of its representation.
func (m *Manual[T]) absent(v T) bool {
	_, err := m.ops.ToDecimal(v)
	return errors.Is(err, apperrors.ErrNullOperand)
}

func (m *Manual[T]) validateCurrent(v, maxValue T, hasMax bool) error {
	d, err := m.ops.ToDecimal(v)
	if errors.Is(err, apperrors.ErrNullOperand) {
		return apperrors.NewValueError("current", v, "absent value")
	}
	if err != nil {
		return apperrors.WrapError(err, "current")
	}
	if d.IsNegative() {
		return apperrors.NewValueError("current", d, "must not be negative")
	}
	if !hasMax {
		return nil
	}
	top, err := m.ops.ToDecimal(maxValue)
	if err != nil {
		return apperrors.WrapError(err, "max")
	}
	if d.GreaterThan(top) {
		return apperrors.NewValueError("current", d, "above max %s", top)
	}
	return nil
}

func (m *Manual[T]) validateMax(v, current T) error {
	d, err := m.ops.ToDecimal(v)
	if errors.Is(err, apperrors.ErrNullOperand) {
		return apperrors.NewValueError("max", v, "absent value")
	}
	if err != nil {
		return apperrors.WrapError(err, "max")
	}
	if d.IsNegative() {
		return apperrors.NewValueError("max", d, "must not be negative")
	}
	cur, err := m.ops.ToDecimal(current)
	if err != nil {
		return apperrors.WrapError(err, "current")
	}
	if d.LessThan(cur) {
		return apperrors.NewValueError("max", d, "below current value %s", cur)
	}
	return nil
}

var _ Progress[decimal.Decimal] = (*Manual[decimal.Decimal])(nil)
