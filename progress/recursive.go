package progress

import (
	"sync"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/logging"
)

// ID identifies an entry of a Recursive aggregate. IDs are generation
// checked: terminating an entry bumps the generation of its slot, so a stale
// ID no longer matches. The zero ID matches no entry.
type ID struct {
	slot       uint32
	generation uint32
}

func (id ID) index() int { return int(id.slot) - 1 }

type entry struct {
	source        Source
	signal        *entrySignal
	autoTerminate bool
	terminated    bool
	generation    uint32
}

// entrySignal forwards the events of one registered source.
type entrySignal struct {
	r  *Recursive
	id ID
}

func (s *entrySignal) CurrentChanged() { s.r.onEntryChanged(s.id) }
func (s *entrySignal) MaxChanged()     { s.r.onEntryChanged(s.id) }

// Recursive aggregates a registry of sources that can grow while the work
// runs. Its current value is the sum of the entry ratios, a terminated entry
// counting for exactly 1. Its max is the configured capacity, unknown until
// set, so the aggregate cannot finish before the caller declares that no
// more entries will come.
type Recursive struct {
	logger logging.Logger

	update sync.Mutex
	mu     sync.RWMutex

	entries     []entry
	capacity    int
	hasCapacity bool
	current     decimal.Decimal

	listeners notifier[Listener[decimal.Decimal]]
}

// NewRecursive returns an empty registry with an unknown capacity.
func NewRecursive(opts ...Option) *Recursive {
	o := buildOptions(opts)
	return &Recursive{logger: o.logger}
}

// RegisterAuto registers src with auto-termination.
func (r *Recursive) RegisterAuto(src Source) (ID, error) {
	return r.Register(src, true)
}

// Register adds src to the registry. With autoTerminate, the entry is
// terminated as soon as src finishes, including right away when src is
// already finished.
//
// It fails with ErrDuplicateSource when src is already registered and not
// terminated, and with a *CapacityError when the capacity is reached.
// Sources are compared with ==, so their dynamic type must be comparable.
func (r *Recursive) Register(src Source, autoTerminate bool) (ID, error) {
	r.update.Lock()
	defer r.update.Unlock()

	r.mu.RLock()
	count, capacity, hasCapacity := len(r.entries), r.capacity, r.hasCapacity
	for _, e := range r.entries {
		if !e.terminated && e.source == src {
			r.mu.RUnlock()
			return ID{}, apperrors.ErrDuplicateSource
		}
	}
	r.mu.RUnlock()
	if hasCapacity && count >= capacity {
		return ID{}, &apperrors.CapacityError{Capacity: capacity}
	}

	id := ID{slot: uint32(count) + 1}
	sig := &entrySignal{r: r, id: id}
	r.mu.Lock()
	r.entries = append(r.entries, entry{source: src, signal: sig, autoTerminate: autoTerminate})
	r.mu.Unlock()
	src.AddSignal(sig)
	r.logger.Debug("recursive entry registered", logging.Int("index", id.index()))

	r.refreshEntryLocked(id)
	return id, nil
}

// Terminate replaces the source of id with a finished stand-in and
// unsubscribes from the original. Unknown IDs and already terminated entries
// are ignored.
func (r *Recursive) Terminate(id ID) {
	r.update.Lock()
	defer r.update.Unlock()
	r.terminateLocked(id)
}

func (r *Recursive) terminateLocked(id ID) bool {
	r.mu.Lock()
	e := r.entryLocked(id)
	if e == nil {
		r.mu.Unlock()
		return false
	}
	original, sig := e.source, e.signal
	e.source, e.signal = finishedSource{}, nil
	e.terminated = true
	e.generation++
	r.current = r.sumLocked()
	cur := r.current
	r.mu.Unlock()

	original.RemoveSignal(sig)
	r.logger.Debug("recursive entry terminated", logging.Int("index", id.index()))
	r.listeners.dispatch(func(l Listener[decimal.Decimal]) { l.OnCurrentChanged(cur) })
	return true
}

func (r *Recursive) onEntryChanged(id ID) {
	r.update.Lock()
	defer r.update.Unlock()
	r.refreshEntryLocked(id)
}

// refreshEntryLocked republishes the current value when the entry ratio is
// known. A finished auto-terminating entry is terminated instead, which
// publishes the same value once.
func (r *Recursive) refreshEntryLocked(id ID) {
	r.mu.Lock()
	live := r.entryLocked(id)
	if live == nil {
		r.mu.Unlock()
		return
	}
	e := *live
	r.mu.Unlock()

	if e.autoTerminate && e.source.IsFinished() {
		r.terminateLocked(id)
		return
	}
	r.mu.Lock()
	r.current = r.sumLocked()
	cur := r.current
	r.mu.Unlock()

	if _, known := e.source.MaxDecimal(); known {
		r.listeners.dispatch(func(l Listener[decimal.Decimal]) { l.OnCurrentChanged(cur) })
	}
}

// entryLocked returns the live entry of id, or nil.
func (r *Recursive) entryLocked(id ID) *entry {
	i := id.index()
	if i < 0 || i >= len(r.entries) || r.entries[i].generation != id.generation || r.entries[i].terminated {
		return nil
	}
	return &r.entries[i]
}

func (r *Recursive) sumLocked() decimal.Decimal {
	total := decimal.Zero
	for _, e := range r.entries {
		if ratio, ok := Normalized(e.source); ok {
			total = total.Add(ratio)
		}
	}
	return total
}

// SetCapacity sets the maximum number of entries. It fails with
// ErrInvalidValue when n is negative or below the number of registered
// entries.
func (r *Recursive) SetCapacity(n int) error {
	r.update.Lock()
	defer r.update.Unlock()
	return r.setCapacityLocked(n)
}

func (r *Recursive) setCapacityLocked(n int) error {
	r.mu.Lock()
	count := len(r.entries)
	if n < 0 {
		r.mu.Unlock()
		return apperrors.NewValueError("capacity", n, "must not be negative")
	}
	if n < count {
		r.mu.Unlock()
		return apperrors.NewValueError("capacity", n, "below the %d registered entries", count)
	}
	r.capacity, r.hasCapacity = n, true
	r.mu.Unlock()

	maxValue := decimal.NewFromInt(int64(n))
	r.listeners.dispatch(func(l Listener[decimal.Decimal]) { l.OnMaxChanged(maxValue, true) })
	return nil
}

// ClearCapacity makes the capacity, and therefore the max, unknown.
func (r *Recursive) ClearCapacity() {
	r.update.Lock()
	defer r.update.Unlock()
	r.mu.Lock()
	r.capacity, r.hasCapacity = 0, false
	r.mu.Unlock()
	r.listeners.dispatch(func(l Listener[decimal.Decimal]) { l.OnMaxChanged(decimal.Zero, false) })
}

// SetCapacityToCurrentCount freezes the capacity at the number of entries
// registered so far, declaring that no more will come.
func (r *Recursive) SetCapacityToCurrentCount() {
	r.update.Lock()
	defer r.update.Unlock()
	r.mu.RLock()
	count := len(r.entries)
	r.mu.RUnlock()
	// count is never negative nor below itself.
	_ = r.setCapacityLocked(count)
}

// Capacity returns the capacity and whether it is set.
func (r *Recursive) Capacity() (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.capacity, r.hasCapacity
}

// Len returns the number of registered entries, terminated ones included.
func (r *Recursive) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// CurrentValue returns the sum of the entry ratios.
func (r *Recursive) CurrentValue() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// MaxValue returns the capacity, unknown until set.
func (r *Recursive) MaxValue() (decimal.Decimal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.hasCapacity {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(r.capacity)), true
}

// IsFinished reports whether the capacity is set and every slot is
// complete. A capacity of 0 with no entry is finished.
func (r *Recursive) IsFinished() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasCapacity && r.current.Equal(decimal.NewFromInt(int64(r.capacity)))
}

// AddListener subscribes l.
func (r *Recursive) AddListener(l Listener[decimal.Decimal]) { r.listeners.add(l) }

// RemoveListener unsubscribes l.
func (r *Recursive) RemoveListener(l Listener[decimal.Decimal]) { r.listeners.remove(l) }

// Dispose unsubscribes from every live entry.
func (r *Recursive) Dispose() {
	r.update.Lock()
	defer r.update.Unlock()
	r.mu.RLock()
	live := make([]entry, 0, len(r.entries))
	for _, e := range r.entries {
		if !e.terminated {
			live = append(live, e)
		}
	}
	r.mu.RUnlock()
	for _, e := range live {
		e.source.RemoveSignal(e.signal)
	}
}

// Source returns the type-erased view of r.
func (r *Recursive) Source() Source { return Erase[decimal.Decimal](r) }

func (r *Recursive) String() string { return formatSource(r.Source()) }
