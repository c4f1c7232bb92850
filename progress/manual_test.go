package progress

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/internal/testutil"
)

// TestManual_AddUntilFinished runs a (0, 10) progress to completion one unit
// at a time.
func TestManual_AddUntilFinished(t *testing.T) {
	t.Parallel()
	m, err := NewManual(0, 10)
	if err != nil {
		t.Fatalf("NewManual: %v", err)
	}
	rec := &testutil.Recorder[int]{}
	m.AddListener(rec)

	for i := 1; i <= 10; i++ {
		if err := m.Add(1); err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
		if want := i == 10; m.IsFinished() != want {
			t.Errorf("after %d adds IsFinished() = %v, want %v", i, m.IsFinished(), want)
		}
	}
	if rec.CurrentCalls() != 10 {
		t.Errorf("expected 10 current notifications, got %d", rec.CurrentCalls())
	}
	if rec.MaxCalls() != 0 {
		t.Errorf("expected 0 max notifications, got %d", rec.MaxCalls())
	}
}

func TestManual_InvalidValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		run  func() error
	}{
		{"start above max", func() error { _, err := NewManual(5, 3); return err }},
		{"negative start", func() error { _, err := NewManual(-1, 3); return err }},
		{"negative unbounded start", func() error { _, err := NewUnboundedManual(-0.5); return err }},
		{"negative current", func() error {
			m, _ := NewManual(0, 10)
			return m.SetCurrent(-1)
		}},
		{"current above max", func() error {
			m, _ := NewManual(0, 10)
			return m.SetCurrent(11)
		}},
		{"max below current", func() error {
			m, _ := NewManual(5, 10)
			return m.SetMax(4)
		}},
		{"negative max", func() error {
			m, _ := NewUnboundedManual(0)
			return m.SetMax(-2)
		}},
		{"add below zero", func() error {
			m, _ := NewManual(3, 10)
			return m.Add(-4)
		}},
		{"add overflow", func() error {
			m, _ := NewUnboundedManual[uint8](250)
			return m.Add(10)
		}},
		{"nan current", func() error {
			m, _ := NewUnboundedManual(1.0)
			return m.SetCurrent(math.NaN())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.run(); !errors.Is(err, apperrors.ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestManual_RejectedMutationLeavesState(t *testing.T) {
	t.Parallel()
	m, _ := NewManual(4, 10)
	rec := &testutil.Recorder[int]{}
	m.AddListener(rec)

	_ = m.SetCurrent(12)
	_ = m.SetMax(2)

	if m.CurrentValue() != 4 {
		t.Errorf("CurrentValue() = %d, want 4", m.CurrentValue())
	}
	if v, known := m.MaxValue(); !known || v != 10 {
		t.Errorf("MaxValue() = (%d, %v), want (10, true)", v, known)
	}
	if rec.CurrentCalls()+rec.MaxCalls() != 0 {
		t.Error("rejected mutations must not notify")
	}
}

func TestManual_AbsentValues(t *testing.T) {
	t.Parallel()
	if _, err := NewUnboundedManual[*big.Int](nil); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("absent start: expected ErrInvalidValue, got %v", err)
	}
	m, err := NewManual(big.NewInt(0), big.NewInt(100))
	if err != nil {
		t.Fatalf("NewManual: %v", err)
	}
	rec := &testutil.Recorder[*big.Int]{}
	m.AddListener(rec)

	err = m.SetCurrent(nil)
	if !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("absent current: expected ErrInvalidValue, got %v", err)
	}
	var valueErr *apperrors.ValueError
	if !errors.As(err, &valueErr) || valueErr.Field != "current" {
		t.Errorf("expected a *ValueError on current, got %v", err)
	}
	if rec.CurrentCalls() != 0 {
		t.Error("a rejected value must not notify")
	}

	if err := m.SetMax(nil); err != nil {
		t.Fatalf("absent max must clear the max, got %v", err)
	}
	if _, known := m.MaxValue(); known {
		t.Error("max should be unknown after SetMax(nil)")
	}
	if last, ok := rec.LastMax(); !ok || last.Known {
		t.Errorf("expected an unknown-max event, got %+v", last)
	}

	if err := m.Add(nil); !errors.Is(err, apperrors.ErrNullOperand) {
		t.Errorf("adding an absent delta: expected ErrNullOperand, got %v", err)
	}
	if err := m.SetMax(big.NewInt(100)); err != nil {
		t.Fatalf("SetMax: %v", err)
	}
	if err := m.Add(big.NewInt(100)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !m.IsFinished() {
		t.Error("100/100 should be finished")
	}

	unbounded, err := NewManual(big.NewInt(4), nil)
	if err != nil {
		t.Fatalf("NewManual with absent max: %v", err)
	}
	if _, known := unbounded.MaxValue(); known {
		t.Error("an absent max at construction should be unknown")
	}
}

func TestManual_Finish(t *testing.T) {
	t.Parallel()

	t.Run("known max moves current", func(t *testing.T) {
		t.Parallel()
		m, _ := NewManual(3, 8)
		rec := &testutil.Recorder[int]{}
		m.AddListener(rec)
		if err := m.Finish(); err != nil {
			t.Fatalf("Finish: %v", err)
		}
		if m.CurrentValue() != 8 || !m.IsFinished() {
			t.Errorf("got current %d finished %v, want 8 true", m.CurrentValue(), m.IsFinished())
		}
		if rec.CurrentCalls() != 1 || rec.MaxCalls() != 0 {
			t.Errorf("notifications current=%d max=%d, want 1 and 0", rec.CurrentCalls(), rec.MaxCalls())
		}
	})

	t.Run("unknown max becomes current", func(t *testing.T) {
		t.Parallel()
		m, _ := NewUnboundedManual[uint32](42)
		rec := &testutil.Recorder[uint32]{}
		m.AddListener(rec)
		if err := m.Finish(); err != nil {
			t.Fatalf("Finish: %v", err)
		}
		if v, known := m.MaxValue(); !known || v != 42 {
			t.Errorf("MaxValue() = (%d, %v), want (42, true)", v, known)
		}
		if !m.IsFinished() {
			t.Error("expected finished")
		}
		if ev, ok := rec.LastMax(); !ok || ev.Value != 42 || !ev.Known {
			t.Errorf("last max event = %+v, want {42 true}", ev)
		}
	})
}

func TestManual_ClearMax(t *testing.T) {
	t.Parallel()
	m, _ := NewManual(5, 5)
	rec := &testutil.Recorder[int]{}
	m.AddListener(rec)

	m.ClearMax()

	if _, known := m.MaxValue(); known {
		t.Error("max should be unknown")
	}
	if m.IsFinished() {
		t.Error("a progress with unknown max is never finished")
	}
	if ev, ok := rec.LastMax(); !ok || ev.Known || ev.Value != 0 {
		t.Errorf("last max event = %+v, want {0 false}", ev)
	}
	if err := m.SetCurrent(1000); err != nil {
		t.Errorf("any non-negative current is valid without a max: %v", err)
	}
}

func TestManual_RemoveListener(t *testing.T) {
	t.Parallel()
	m, _ := NewManual(0, 10)
	rec := &testutil.Recorder[int]{}
	m.AddListener(rec)
	m.AddListener(rec)
	m.RemoveListener(rec)

	_ = m.SetCurrent(3)
	_ = m.SetMax(20)
	_ = m.Finish()

	if rec.CurrentCalls()+rec.MaxCalls() != 0 {
		t.Errorf("removed listener received %d notifications", rec.CurrentCalls()+rec.MaxCalls())
	}
}

func TestManual_AddListenerIsIdempotent(t *testing.T) {
	t.Parallel()
	m, _ := NewManual(0, 10)
	rec := &testutil.Recorder[int]{}
	m.AddListener(rec)
	m.AddListener(rec)

	_ = m.SetCurrent(1)

	if rec.CurrentCalls() != 1 {
		t.Errorf("expected a single notification, got %d", rec.CurrentCalls())
	}
}

func TestManual_String(t *testing.T) {
	t.Parallel()
	bounded, _ := NewManual(1644, 1800)
	unbounded, _ := NewUnboundedManual(7)
	fractional, _ := NewManual(decimal.RequireFromString("0.5"), decimal.NewFromInt(2))

	tests := []struct {
		got, want string
	}{
		{bounded.String(), "1644/1800 (91%)"},
		{unbounded.String(), "7"},
		{fractional.String(), "0.5/2 (25%)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestManual_ListenerReadsDuringDispatch(t *testing.T) {
	t.Parallel()
	m, _ := NewManual(0, 10)
	var seen int
	var finished bool
	m.AddListener(&ListenerFuncs[int]{Current: func(int) {
		seen = m.CurrentValue()
		finished = m.IsFinished()
	}})

	_ = m.SetCurrent(10)

	if seen != 10 || !finished {
		t.Errorf("listener saw current %d finished %v, want 10 true", seen, finished)
	}
}

func TestBinary(t *testing.T) {
	t.Parallel()
	b := NewBinary()
	rec := &testutil.Recorder[uint8]{}
	b.AddListener(rec)

	if b.IsFinished() || b.CurrentValue() != 0 {
		t.Fatal("a new Binary must be unfinished")
	}
	if v, known := b.MaxValue(); !known || v != 1 {
		t.Fatalf("MaxValue() = (%d, %v), want (1, true)", v, known)
	}

	b.Finish()
	b.Finish()
	if !b.IsFinished() {
		t.Error("expected finished")
	}
	b.Restart()
	if b.IsFinished() {
		t.Error("expected unfinished after Restart")
	}
	if got := rec.Currents(); len(got) != 3 || got[0] != 1 || got[1] != 1 || got[2] != 0 {
		t.Errorf("notifications = %v, want [1 1 0]", got)
	}
	if b.String() != "0/1 (0%)" {
		t.Errorf("String() = %q", b.String())
	}
}
