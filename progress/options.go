package progress

import "github.com/agbru/progresskit/logging"

type options struct {
	logger logging.Logger
}

// Option configures an aggregate.
type Option func(*options)

// WithLogger sets the logger used to report skipped notifications. The
// default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
