package progress

import (
	"sync"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/logging"
)

// Counting sums the completion ratios of sources of any representation. Its
// max is the number of sources and never changes, so every source event,
// including a max change, reaches listeners as a current change.
//
// A source with an unknown max contributes 0.
type Counting struct {
	logger  logging.Logger
	sources []Source
	relay   *countingRelay
	total   decimal.Decimal

	update sync.Mutex
	mu     sync.RWMutex

	current decimal.Decimal

	listeners notifier[Listener[decimal.Decimal]]
}

type countingRelay struct {
	c *Counting
}

func (r *countingRelay) CurrentChanged() { r.c.recompute() }
func (r *countingRelay) MaxChanged()     { r.c.recompute() }

// NewCounting subscribes to sources and returns the sum of their ratios. It
// fails with ErrEmptySourceSet when sources is empty.
func NewCounting(sources []Source, opts ...Option) (*Counting, error) {
	if len(sources) == 0 {
		return nil, apperrors.ErrEmptySourceSet
	}
	o := buildOptions(opts)
	c := &Counting{
		logger:  o.logger,
		sources: append([]Source(nil), sources...),
		total:   decimal.NewFromInt(int64(len(sources))),
	}
	c.current = c.sum()
	c.relay = &countingRelay{c: c}
	for _, src := range c.sources {
		src.AddSignal(c.relay)
	}
	return c, nil
}

func (c *Counting) sum() decimal.Decimal {
	total := decimal.Zero
	for _, src := range c.sources {
		if ratio, ok := Normalized(src); ok {
			total = total.Add(ratio)
		}
	}
	return total
}

func (c *Counting) recompute() {
	c.update.Lock()
	defer c.update.Unlock()
	cur := c.sum()
	c.mu.Lock()
	c.current = cur
	c.mu.Unlock()
	c.logger.Debug("counting recomputed", logging.String("current", cur.String()))
	c.listeners.dispatch(func(l Listener[decimal.Decimal]) { l.OnCurrentChanged(cur) })
}

// CurrentValue returns the sum of the source ratios.
func (c *Counting) CurrentValue() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// MaxValue returns the number of sources. It is always known.
func (c *Counting) MaxValue() (decimal.Decimal, bool) { return c.total, true }

// IsFinished reports whether every source is finished.
func (c *Counting) IsFinished() bool { return c.CurrentValue().Equal(c.total) }

// AddListener subscribes l.
func (c *Counting) AddListener(l Listener[decimal.Decimal]) { c.listeners.add(l) }

// RemoveListener unsubscribes l.
func (c *Counting) RemoveListener(l Listener[decimal.Decimal]) { c.listeners.remove(l) }

// Dispose unsubscribes from every source.
func (c *Counting) Dispose() {
	for _, src := range c.sources {
		src.RemoveSignal(c.relay)
	}
}

// Source returns the type-erased view of c.
func (c *Counting) Source() Source { return Erase[decimal.Decimal](c) }

func (c *Counting) String() string { return formatSource(c.Source()) }
