// Package metrics exposes progresses as Prometheus collectors.
//
// An Exporter follows any number of named progress.Source values. Every
// notification refreshes the gauges of the progress that fired it and
// increments an update counter labelled by the kind of change.
package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/agbru/progresskit/errors"
	"github.com/agbru/progresskit/logging"
	"github.com/agbru/progresskit/progress"
)

const namespace = "progresskit"

// Update kinds used as the "kind" label of the update counter.
const (
	KindCurrent = "current"
	KindMax     = "max"
)

// Exporter maintains Prometheus series for tracked progresses.
type Exporter struct {
	current  *prometheus.GaugeVec
	maximum  *prometheus.GaugeVec
	ratio    *prometheus.GaugeVec
	finished *prometheus.GaugeVec
	updates  *prometheus.CounterVec

	logger logging.Logger

	mu      sync.Mutex
	tracked map[string]*probe
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger used to report tracking changes.
func WithLogger(l logging.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Exporter and registers its collectors with reg.
func New(reg prometheus.Registerer, opts ...Option) (*Exporter, error) {
	labels := []string{"progress"}
	e := &Exporter{
		current: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "progress_current",
			Help:      "Current value of a tracked progress.",
		}, labels),
		maximum: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "progress_max",
			Help:      "Max of a tracked progress. Absent while the max is unknown.",
		}, labels),
		ratio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "progress_ratio",
			Help:      "Current value divided by max, between 0 and 1. Absent while the max is unknown.",
		}, labels),
		finished: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "progress_finished",
			Help:      "1 when a tracked progress is finished, 0 otherwise.",
		}, labels),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "progress_updates_total",
			Help:      "Notifications received from a tracked progress, labelled by kind.",
		}, []string{"progress", "kind"}),
		logger:  logging.Nop(),
		tracked: make(map[string]*probe),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, c := range []prometheus.Collector{e.current, e.maximum, e.ratio, e.finished, e.updates} {
		if err := reg.Register(c); err != nil {
			return nil, apperrors.WrapError(err, "register progress collectors")
		}
	}
	return e, nil
}

// Track starts exporting src under name and publishes its state right away.
// A name can only be tracked once at a time.
func (e *Exporter) Track(name string, src progress.Source) error {
	e.mu.Lock()
	if _, ok := e.tracked[name]; ok {
		e.mu.Unlock()
		return fmt.Errorf("progress %q: %w", name, apperrors.ErrDuplicateSource)
	}
	p := &probe{e: e, name: name, src: src}
	e.tracked[name] = p
	e.mu.Unlock()

	src.AddSignal(p)
	e.refresh(name, src)
	e.logger.Debug("progress tracked", logging.String("progress", name))
	return nil
}

// Untrack stops exporting name and deletes its series. It reports whether
// name was tracked.
func (e *Exporter) Untrack(name string) bool {
	e.mu.Lock()
	p, ok := e.tracked[name]
	delete(e.tracked, name)
	e.mu.Unlock()
	if !ok {
		return false
	}

	p.src.RemoveSignal(p)
	e.current.DeleteLabelValues(name)
	e.maximum.DeleteLabelValues(name)
	e.ratio.DeleteLabelValues(name)
	e.finished.DeleteLabelValues(name)
	e.updates.DeleteLabelValues(name, KindCurrent)
	e.updates.DeleteLabelValues(name, KindMax)
	e.logger.Debug("progress untracked", logging.String("progress", name))
	return true
}

// Tracked returns the number of tracked progresses.
func (e *Exporter) Tracked() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tracked)
}

func (e *Exporter) refresh(name string, src progress.Source) {
	e.current.WithLabelValues(name).Set(src.CurrentDecimal().InexactFloat64())
	if maxValue, known := src.MaxDecimal(); known {
		e.maximum.WithLabelValues(name).Set(maxValue.InexactFloat64())
		r, _ := progress.Normalized(src)
		e.ratio.WithLabelValues(name).Set(r.InexactFloat64())
	} else {
		e.maximum.DeleteLabelValues(name)
		e.ratio.DeleteLabelValues(name)
	}
	finished := 0.0
	if src.IsFinished() {
		finished = 1
	}
	e.finished.WithLabelValues(name).Set(finished)
}

func (e *Exporter) observe(p *probe, kind string) {
	e.mu.Lock()
	live := e.tracked[p.name] == p
	e.mu.Unlock()
	if !live {
		return
	}
	e.updates.WithLabelValues(p.name, kind).Inc()
	e.refresh(p.name, p.src)
}

// probe is the Signal an Exporter attaches to each tracked source.
type probe struct {
	e    *Exporter
	name string
	src  progress.Source
}

func (p *probe) CurrentChanged() { p.e.observe(p, KindCurrent) }
func (p *probe) MaxChanged()     { p.e.observe(p, KindMax) }

// Handler returns an http.Handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
