package location

import (
	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/core/domain/model/reference"
)

// Option customises NewLocation.
type Option func(*options)

type options struct {
	clock kernel.Clock
	types reference.LocationTypes
}

// WithClock sets the clock used for the creation timestamp.
func WithClock(clock kernel.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLocationTypes replaces the default set of allowed location types.
// A zero-value set makes NewLocation fail.
func WithLocationTypes(types reference.LocationTypes) Option {
	return func(o *options) {
		o.types = types
	}
}

func newOptions(opts []Option) options {
	o := options{
		clock: kernel.SystemClock{},
		types: reference.DefaultLocationTypes(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
