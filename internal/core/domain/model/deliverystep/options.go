package deliverystep

import "gigdelivery/internal/core/domain/model/kernel"

// Option customises NewDeliveryStep.
type Option func(*options)

type options struct {
	clock kernel.Clock
}

// WithClock sets the clock used for the creation, arrival and departure timestamps.
func WithClock(clock kernel.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func newOptions(opts []Option) options {
	o := options{clock: kernel.SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
