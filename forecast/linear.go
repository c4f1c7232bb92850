package forecast

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/logging"
	"github.com/agbru/progresskit/numeric"
	"github.com/agbru/progresskit/progress"
)

// Target selects the quantity a tracking predictor follows.
type Target int

const (
	// CurrentValue follows the current value of a progress.
	CurrentValue Target = iota
	// MaxValue follows the max of a progress. Unknown maxes are skipped.
	MaxValue
)

func (t Target) String() string {
	if t == MaxValue {
		return "max"
	}
	return "current"
}

type sample struct {
	ts    time.Time
	value decimal.Decimal
}

// Linear fits value = slope*t + intercept by ordinary least squares over a
// sliding window of samples, t being in seconds since the oldest sample of
// the window.
//
// Linear is safe for concurrent use.
type Linear[T numeric.Value] struct {
	ops numeric.Ops[T]
	s   settings

	mu        sync.Mutex
	samples   []sample
	slope     decimal.Decimal
	intercept decimal.Decimal

	tracked  progress.Progress[T]
	listener *tracker[T]
}

// NewLinear returns an empty predictor fed through Observe.
func NewLinear[T numeric.Value](opts ...Option) *Linear[T] {
	return &Linear[T]{ops: numeric.For[T](), s: buildSettings(opts)}
}

// Track returns a predictor following target on p. It is seeded right away
// with the value at subscription time, unless target is an unknown max.
// Call Close to unsubscribe.
func Track[T numeric.Value](p progress.Progress[T], target Target, opts ...Option) *Linear[T] {
	l := NewLinear[T](opts...)
	l.tracked = p
	l.listener = &tracker[T]{l: l, target: target}
	p.AddListener(l.listener)
	switch target {
	case MaxValue:
		if v, known := p.MaxValue(); known {
			l.record(v)
		}
	default:
		l.record(p.CurrentValue())
	}
	return l
}

// tracker feeds a Linear from the notifications of a progress.
type tracker[T numeric.Value] struct {
	l      *Linear[T]
	target Target
}

func (t *tracker[T]) OnCurrentChanged(v T) {
	if t.target == CurrentValue {
		t.l.record(v)
	}
}

func (t *tracker[T]) OnMaxChanged(v T, known bool) {
	if t.target == MaxValue && known {
		t.l.record(v)
	}
}

func (l *Linear[T]) record(v T) {
	if err := l.Observe(l.s.clock.Now(), v); err != nil {
		l.s.logger.Warn("sample dropped", logging.Err(err), logging.String("target", l.listener.target.String()))
	}
}

// Close stops tracking. It is a no-op for predictors built with NewLinear.
func (l *Linear[T]) Close() {
	if l.tracked != nil {
		l.tracked.RemoveListener(l.listener)
	}
}

// Observe appends a sample, evicts old samples per the window rule and
// refits the line.
func (l *Linear[T]) Observe(ts time.Time, v T) error {
	d, err := l.ops.ToDecimal(v)
	if err != nil {
		return apperrors.WrapError(err, "observe")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.samples = append(l.samples, sample{ts: ts, value: d})
	dropped := 0
	for len(l.samples) > l.s.minSamples && l.spanLocked() > l.s.maxSpan {
		l.samples[0] = sample{}
		l.samples = l.samples[1:]
		dropped++
	}
	if dropped > 0 {
		l.s.logger.Debug("window trimmed", logging.Int("dropped", dropped), logging.Int("kept", len(l.samples)))
	}
	l.fitLocked()
	return nil
}

func (l *Linear[T]) spanLocked() time.Duration {
	return l.samples[len(l.samples)-1].ts.Sub(l.samples[0].ts)
}

func seconds(d time.Duration) decimal.Decimal {
	return decimal.New(d.Nanoseconds(), -9)
}

func (l *Linear[T]) fitLocked() {
	origin := l.samples[0].ts
	n := decimal.NewFromInt(int64(len(l.samples)))
	var st, sv, stt, stv decimal.Decimal
	for _, s := range l.samples {
		t := seconds(s.ts.Sub(origin))
		st = st.Add(t)
		sv = sv.Add(s.value)
		stt = stt.Add(t.Mul(t))
		stv = stv.Add(t.Mul(s.value))
	}
	denom := n.Mul(stt).Sub(st.Mul(st))
	if denom.IsZero() {
		// All samples share one timestamp: the best line is flat at the mean.
		l.slope = decimal.Zero
		l.intercept = sv.DivRound(n, numeric.DivisionPrecision)
		return
	}
	l.slope = n.Mul(stv).Sub(st.Mul(sv)).DivRound(denom, numeric.DivisionPrecision)
	l.intercept = sv.Sub(l.slope.Mul(st)).DivRound(n, numeric.DivisionPrecision)
}

// PredictDecimalAt evaluates the fitted line at ts. It fails with
// ErrNoDataYet before the first sample and returns the only sample value
// when there is just one.
func (l *Linear[T]) PredictDecimalAt(ts time.Time) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch len(l.samples) {
	case 0:
		return decimal.Zero, apperrors.ErrNoDataYet
	case 1:
		return l.samples[0].value, nil
	}
	t := seconds(ts.Sub(l.samples[0].ts))
	return l.slope.Mul(t).Add(l.intercept), nil
}

// PredictValueAt evaluates the fitted line at ts in the representation of
// T. Integer predictions are rounded half away from zero; a prediction
// outside the range of T fails with ErrInvalidValue.
func (l *Linear[T]) PredictValueAt(ts time.Time) (T, error) {
	d, err := l.PredictDecimalAt(ts)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.ops.FromDecimal(d)
}

// Len returns the number of samples in the window.
func (l *Linear[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.samples)
}

// Reset drops every sample. Tracking, if any, continues.
func (l *Linear[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.samples = nil
	l.slope, l.intercept = decimal.Zero, decimal.Zero
}
