package delivery

import "gigdelivery/internal/core/domain/model/kernel"

// Option customises NewDelivery.
type Option func(*options)

type options struct {
	clock kernel.Clock
}

// WithClock sets the clock used for the creation timestamp.
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
