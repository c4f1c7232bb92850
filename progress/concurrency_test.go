package progress

import (
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/progresskit/internal/testutil"
)

// TestManual_ConcurrentAdd verifies that concurrent increments are neither
// lost nor notified twice.
func TestManual_ConcurrentAdd(t *testing.T) {
	t.Parallel()
	const workers, perWorker = 8, 500
	m, _ := NewManual(0, workers*perWorker)
	rec := &testutil.Recorder[int]{}
	m.AddListener(rec)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if err := m.Add(1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if !m.IsFinished() {
		t.Errorf("CurrentValue() = %d, want %d", m.CurrentValue(), workers*perWorker)
	}
	if rec.CurrentCalls() != workers*perWorker {
		t.Errorf("expected %d notifications, got %d", workers*perWorker, rec.CurrentCalls())
	}
	// Notifications are serialized with the writes, so they arrive in order.
	for i, v := range rec.Currents() {
		if v != i+1 {
			t.Fatalf("notification %d carried %d", i, v)
		}
	}
}

// TestAggregates_ConcurrentSources drives every source from its own
// goroutine while listeners subscribe and unsubscribe.
func TestAggregates_ConcurrentSources(t *testing.T) {
	t.Parallel()
	const n, steps = 6, 200
	sources := make([]*Manual[int], n)
	list := make([]Progress[int], n)
	erased := make([]Source, n)
	for i := range sources {
		sources[i], _ = NewManual(0, steps)
		list[i] = sources[i]
		erased[i] = sources[i].Source()
	}
	add, err := NewAdditive(list)
	if err != nil {
		t.Fatalf("NewAdditive: %v", err)
	}
	defer add.Dispose()
	cnt, err := NewCounting(erased)
	if err != nil {
		t.Fatalf("NewCounting: %v", err)
	}
	defer cnt.Dispose()
	rec := NewRecursive()
	defer rec.Dispose()
	for _, src := range erased {
		if _, err := rec.RegisterAuto(src); err != nil {
			t.Fatalf("RegisterAuto: %v", err)
		}
	}
	rec.SetCapacityToCurrentCount()

	var g errgroup.Group
	for _, s := range sources {
		g.Go(func() error {
			for i := 0; i < steps; i++ {
				if err := s.Add(1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		for i := 0; i < steps; i++ {
			l := &testutil.Recorder[int]{}
			add.AddListener(l)
			_ = add.CurrentValue()
			add.RemoveListener(l)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatalf("worker: %v", err)
	}

	if add.CurrentValue() != n*steps || !add.IsFinished() {
		t.Errorf("additive current = %d, want %d", add.CurrentValue(), n*steps)
	}
	if !cnt.IsFinished() {
		t.Errorf("counting current = %s, want %d", cnt.CurrentValue(), n)
	}
	if !rec.IsFinished() {
		t.Errorf("recursive current = %s, want %d", rec.CurrentValue(), n)
	}
}
