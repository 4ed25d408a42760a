// Package backend defines how graphs are handed over to audio engines.
//
// Static graphs are converted into engine assets once, dynamic graphs are
// instantiated as streams and wrapped into engine sources.
package backend

import (
	"errors"
	"fmt"
	"math"

	"github.com/pipelined/dspgraph"
)

// ErrSampleRate is returned when engine can't play graph sample rate.
var ErrSampleRate = errors.New("sample rate is not supported")

// Backend is an audio engine adapter. A is an engine asset type and S is
// an engine source type.
type Backend[A, S any] interface {
	// Init is called once before any graph is converted.
	Init(r *dspgraph.Registry) error
	// Asset converts static graph into engine asset.
	Asset(d *dspgraph.Descriptor) (A, error)
	// Source wraps the stream into engine source.
	Source(s *dspgraph.Stream) S
}

// Load initializes backend and converts every static graph of registry
// into asset.
func Load[A, S any](b Backend[A, S], r *dspgraph.Registry) (map[dspgraph.Identity]A, error) {
	if err := b.Init(r); err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}
	assets := make(map[dspgraph.Identity]A)
	var err error
	r.Each(func(d *dspgraph.Descriptor) {
		if err != nil || !d.Mode().IsStatic() {
			return
		}
		var a A
		if a, err = b.Asset(d); err != nil {
			err = fmt.Errorf("asset %s: %w", d.Name(), err)
			return
		}
		assets[d.ID()] = a
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// Source instantiates a stream of registered graph and wraps it into
// engine source.
func Source[A, S any](b Backend[A, S], r *dspgraph.Registry, id dspgraph.Identity) (S, *dspgraph.Stream, error) {
	s, err := r.Stream(id)
	if err != nil {
		var zero S
		return zero, nil, err
	}
	return b.Source(s), s, nil
}

// SampleRate returns integral sample rate of the graph or ErrSampleRate
// if it's fractional or not positive.
func SampleRate(d *dspgraph.Descriptor) (int, error) {
	sr := float64(d.SampleRate())
	if sr <= 0 || sr != math.Trunc(sr) {
		return 0, fmt.Errorf("graph %s at %gHz: %w", d.Name(), sr, ErrSampleRate)
	}
	return int(sr), nil
}

// ValidateSampleRates checks that every registered graph has integral
// sample rate.
func ValidateSampleRates(r *dspgraph.Registry) error {
	var err error
	r.Each(func(d *dspgraph.Descriptor) {
		if err == nil {
			_, err = SampleRate(d)
		}
	})
	return err
}
