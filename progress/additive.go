package progress

import (
	"sync"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/logging"
	"github.com/agbru/progresskit/numeric"
)

// Additive sums sources sharing one numeric representation. Its max is
// unknown as soon as one source max is unknown.
//
// Every source event triggers a full recomputation of both totals; only the
// total matching the event kind is republished.
type Additive[T numeric.Value] struct {
	ops     numeric.Ops[T]
	logger  logging.Logger
	sources []Progress[T]
	relay   *additiveRelay[T]

	update sync.Mutex
	mu     sync.RWMutex

	current T
	max     T
	hasMax  bool

	listeners notifier[Listener[T]]
}

// additiveRelay is the single listener shared by every source.
type additiveRelay[T numeric.Value] struct {
	a *Additive[T]
}

func (r *additiveRelay[T]) OnCurrentChanged(T)   { r.a.recompute(false) }
func (r *additiveRelay[T]) OnMaxChanged(T, bool) { r.a.recompute(true) }

// NewAdditive subscribes to sources and returns their sum. It fails with
// ErrEmptySourceSet when sources is empty.
func NewAdditive[T numeric.Value](sources []Progress[T], opts ...Option) (*Additive[T], error) {
	if len(sources) == 0 {
		return nil, apperrors.ErrEmptySourceSet
	}
	o := buildOptions(opts)
	a := &Additive[T]{
		ops:     numeric.For[T](),
		logger:  o.logger,
		sources: append([]Progress[T](nil), sources...),
	}
	cur, maxValue, hasMax, err := a.sums()
	if err != nil {
		return nil, err
	}
	a.current, a.max, a.hasMax = cur, maxValue, hasMax
	a.relay = &additiveRelay[T]{a: a}
	for _, src := range a.sources {
		src.AddListener(a.relay)
	}
	return a, nil
}

func (a *Additive[T]) sums() (cur, maxValue T, hasMax bool, err error) {
	cur, maxValue, hasMax = a.ops.Zero(), a.ops.Zero(), true
	for _, src := range a.sources {
		if cur, err = a.ops.Add(cur, src.CurrentValue()); err != nil {
			return cur, maxValue, false, apperrors.WrapError(err, "current sum")
		}
		m, known := src.MaxValue()
		if !known {
			hasMax = false
		}
		if !hasMax {
			continue
		}
		if maxValue, err = a.ops.Add(maxValue, m); err != nil {
			return cur, maxValue, false, apperrors.WrapError(err, "max sum")
		}
	}
	if !hasMax {
		maxValue = a.ops.Zero()
	}
	return cur, maxValue, hasMax, nil
}

func (a *Additive[T]) recompute(maxEvent bool) {
	a.update.Lock()
	defer a.update.Unlock()
	cur, maxValue, hasMax, err := a.sums()
	if err != nil {
		a.logger.Warn("additive notification skipped",
			logging.Err(err), logging.String("type", a.ops.Name()))
		return
	}
	a.mu.Lock()
	a.current, a.max, a.hasMax = cur, maxValue, hasMax
	a.mu.Unlock()
	if maxEvent {
		a.listeners.dispatch(func(l Listener[T]) { l.OnMaxChanged(maxValue, hasMax) })
		return
	}
	a.listeners.dispatch(func(l Listener[T]) { l.OnCurrentChanged(cur) })
}

// CurrentValue returns the sum of the source current values.
func (a *Additive[T]) CurrentValue() T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// MaxValue returns the sum of the source max values, unknown when any of
// them is unknown.
func (a *Additive[T]) MaxValue() (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.max, a.hasMax
}

// IsFinished reports whether the max is known and reached.
func (a *Additive[T]) IsFinished() bool {
	a.mu.RLock()
	cur, maxValue, hasMax := a.current, a.max, a.hasMax
	a.mu.RUnlock()
	return hasMax && equalValues(a.ops, cur, maxValue)
}

// AddListener subscribes l.
func (a *Additive[T]) AddListener(l Listener[T]) { a.listeners.add(l) }

// RemoveListener unsubscribes l.
func (a *Additive[T]) RemoveListener(l Listener[T]) { a.listeners.remove(l) }

// Dispose unsubscribes from every source. The aggregate keeps its last
// values but no longer follows its sources.
func (a *Additive[T]) Dispose() {
	for _, src := range a.sources {
		src.RemoveListener(a.relay)
	}
}

// Source returns the type-erased view of a.
func (a *Additive[T]) Source() Source { return Erase[T](a) }

func (a *Additive[T]) String() string { return formatSource(a.Source()) }

func equalValues[T numeric.Value](ops numeric.Ops[T], x, y T) bool {
	dx, err := ops.ToDecimal(x)
	if err != nil {
		return false
	}
	dy, err := ops.ToDecimal(y)
	if err != nil {
		return false
	}
	return dx.Equal(dy)
}
