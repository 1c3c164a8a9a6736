package service

import "time"

type options struct {
	now func() time.Time
}

// Option customises a service at construction time.
type Option func(*options)

// WithClock replaces the wall clock used for created_at, updated_at and timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
