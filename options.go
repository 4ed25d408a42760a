package dspgraph

import (
	"github.com/pipelined/dspgraph/log"
	"github.com/pipelined/dspgraph/param"
)

// DefaultSampleRate is used by registry when no sample rate is provided.
const DefaultSampleRate float32 = 44100

// Option provides a way to set functional parameters to registry.
type Option func(r *Registry)

// WithSampleRate sets sample rate for graphs added with Add.
func WithSampleRate(sampleRate float32) Option {
	return func(r *Registry) {
		r.sampleRate = sampleRate
	}
}

// WithQueueCapacity sets capacity of parameter channels of streams. If
// this option is not provided, param.DefaultCapacity is used.
func WithQueueCapacity(capacity int) Option {
	return func(r *Registry) {
		r.capacity = capacity
	}
}

// WithLogger sets logger to registry. If this option is not provided or
// logger is nil, logrus logger is used.
func WithLogger(logger log.Logger) Option {
	return func(r *Registry) {
		if logger == nil {
			return
		}
		r.log = logger
	}
}

func defaultOptions() []Option {
	return []Option{
		WithSampleRate(DefaultSampleRate),
		WithQueueCapacity(param.DefaultCapacity),
		WithLogger(log.GetLogger()),
	}
}
