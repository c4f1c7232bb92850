package forecast

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/logging"
	"github.com/agbru/progresskit/numeric"
)

// maxOffset is the longest offset a time.Duration can express, in seconds.
var maxOffset = seconds(time.Duration(math.MaxInt64))

// Solver predicts when a current value reaches its max, by finding with the
// secant method the root of f(t) = maximum(t) - current(t), t being in seconds
// from now.
type Solver struct {
	s settings
}

// NewSolver returns a solver. Defaults: first step of one second, 1000
// iterations at most.
func NewSolver(opts ...Option) *Solver {
	return &Solver{s: buildSettings(opts)}
}

// PredictTermination returns the predicted termination instant, or now when
// the current value already reached the max.
//
// Errors from the predictors, ErrNoDataYet in particular, are returned
// unchanged. A degenerate search (coinciding iterates, flat secant, a root
// in the past, an exhausted iteration budget or an unrepresentable instant)
// fails with a *PredictionError wrapping ErrUnableToPredict.
//
// ctx only carries the trace span.
func (s *Solver) PredictTermination(ctx context.Context, current, maximum DecimalPredictor, now time.Time) (time.Time, error) {
	_, span := s.s.tracer.Start(ctx, "forecast.PredictTermination", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	at, iterations, err := s.solve(current, maximum, now)
	span.SetAttributes(attribute.Int("forecast.iterations", iterations))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.s.logger.Debug("termination not predicted", logging.Err(err), logging.Int("iterations", iterations))
		return time.Time{}, err
	}
	span.SetAttributes(attribute.String("forecast.termination", at.Format(time.RFC3339Nano)))
	return at, nil
}

func (s *Solver) solve(current, maximum DecimalPredictor, now time.Time) (time.Time, int, error) {
	f := func(t decimal.Decimal) (decimal.Decimal, error) {
		at := now.Add(time.Duration(t.Shift(9).IntPart()))
		m, err := maximum.PredictDecimalAt(at)
		if err != nil {
			return decimal.Zero, err
		}
		c, err := current.PredictDecimalAt(at)
		if err != nil {
			return decimal.Zero, err
		}
		return m.Sub(c), nil
	}

	t1 := decimal.Zero
	f1, err := f(t1)
	if err != nil {
		return time.Time{}, 0, err
	}
	if !f1.IsPositive() {
		return now, 0, nil
	}
	t2 := seconds(s.s.initialStep)
	f2, err := f(t2)
	if err != nil {
		return time.Time{}, 0, err
	}

	for i := 1; i <= s.s.maxIterations; i++ {
		if !f2.IsPositive() {
			return now.Add(time.Duration(t2.Shift(9).IntPart())), i, nil
		}
		if t1.Equal(t2) {
			return time.Time{}, i, &apperrors.PredictionError{Reason: "iterates coincide", Iterations: i}
		}
		if f1.Equal(f2) {
			return time.Time{}, i, &apperrors.PredictionError{Reason: "flat secant", Iterations: i}
		}
		// Instants have a nanosecond resolution: round up so that a root
		// between two ticks resolves to the later one.
		t3 := t2.Sub(f2.Mul(t2.Sub(t1)).DivRound(f2.Sub(f1), numeric.DivisionPrecision)).RoundCeil(9)
		if t3.IsNegative() {
			return time.Time{}, i, &apperrors.PredictionError{Reason: "root in the past", Iterations: i}
		}
		if t3.GreaterThan(maxOffset) {
			return time.Time{}, i, &apperrors.PredictionError{Reason: "root beyond representable time", Iterations: i}
		}
		f3, err := f(t3)
		if err != nil {
			return time.Time{}, i, err
		}
		t1, f1 = t2, f2
		t2, f2 = t3, f3
	}
	return time.Time{}, s.s.maxIterations, &apperrors.PredictionError{Reason: "iteration budget exhausted", Iterations: s.s.maxIterations}
}

// Remaining returns the predicted duration until termination, zero when
// the current value already reached the max.
func (s *Solver) Remaining(ctx context.Context, current, maximum DecimalPredictor, now time.Time) (time.Duration, error) {
	at, err := s.PredictTermination(ctx, current, maximum, now)
	if err != nil {
		return 0, err
	}
	return at.Sub(now), nil
}
