package dspgraph

import (
	"github.com/pipelined/dspgraph/log"
	"github.com/pipelined/dspgraph/unit"
)

// Descriptor is an immutable recipe of a graph instance. Descriptors are
// shared by pointer, copying never copies graph state.
type Descriptor struct {
	id         Identity
	name       string
	build      BuildFunc
	sampleRate float32
	mode       OutputMode
	capacity   int
	log        log.Logger
}

// ID returns identity of the graph.
func (d *Descriptor) ID() Identity {
	return d.id
}

// Name returns name of the graph.
func (d *Descriptor) Name() string {
	return d.name
}

// SampleRate returns sample rate of graph instances.
func (d *Descriptor) SampleRate() float32 {
	return d.sampleRate
}

// Mode returns the output mode.
func (d *Descriptor) Mode() OutputMode {
	return d.mode
}

// Stream instantiates a new stream of the graph.
func (d *Descriptor) Stream() *Stream {
	return NewStream(d)
}

func (d *Descriptor) instantiate() unit.Unit {
	u := d.build()
	u.Init(&unit.Config{SampleRate: d.sampleRate})
	return u
}
