package forecast

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/progresskit/config"
	"github.com/agbru/progresskit/logging"
)

const tracerName = "github.com/agbru/progresskit/forecast"

// Clock supplies the timestamps of tracked samples.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type settings struct {
	minSamples    int
	maxSpan       time.Duration
	initialStep   time.Duration
	maxIterations int
	clock         Clock
	logger        logging.Logger
	tracer        trace.Tracer
}

func defaultSettings() settings {
	d := config.Default().Forecast
	return settings{
		minSamples:    d.MinSamples,
		maxSpan:       d.MaxSpan,
		initialStep:   d.InitialStep,
		maxIterations: d.MaxIterations,
		clock:         systemClock{},
		logger:        logging.Nop(),
		tracer:        otel.Tracer(tracerName),
	}
}

// Option configures a Linear predictor or a Solver. Options irrelevant to
// the configured type are ignored.
type Option func(*settings)

// WithConfig applies the forecasting section of a loaded configuration.
func WithConfig(cfg config.Forecast) Option {
	return func(s *settings) {
		s.minSamples = cfg.MinSamples
		s.maxSpan = cfg.MaxSpan
		s.initialStep = cfg.InitialStep
		s.maxIterations = cfg.MaxIterations
	}
}

// WithWindow sets the sliding window rule: the oldest sample is evicted
// while more than minSamples are kept and they span more than maxSpan.
func WithWindow(minSamples int, maxSpan time.Duration) Option {
	return func(s *settings) {
		s.minSamples = minSamples
		s.maxSpan = maxSpan
	}
}

// WithSecant sets the first secant step and the iteration budget.
func WithSecant(initialStep time.Duration, maxIterations int) Option {
	return func(s *settings) {
		s.initialStep = initialStep
		s.maxIterations = maxIterations
	}
}

// WithClock sets the clock timestamping tracked samples.
func WithClock(c Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracerProvider sets the provider of the solver tracer. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

func buildSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
