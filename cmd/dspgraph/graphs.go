package main

import (
	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/log"
	"github.com/pipelined/dspgraph/unit"
)

// cutoff controls the filter of the noise graph.
const cutoff unit.Tag = 1

type demo struct {
	graph dspgraph.Graph
	mode  dspgraph.OutputMode
}

var demos = []demo{
	{
		graph: dspgraph.Named("sine", func() unit.Unit {
			return unit.Split(unit.Gain(unit.SineHz(440), 0.2))
		}),
		mode: dspgraph.Static(1),
	},
	{
		graph: dspgraph.Named("triangle", func() unit.Unit {
			return unit.Split(unit.Gain(unit.TriangleHz(392), 0.2))
		}),
		mode: dspgraph.Static(0.5),
	},
	{
		graph: dspgraph.Named("chord", func() unit.Unit {
			return unit.Stereo(
				unit.Gain(unit.Mix(unit.SineHz(261.63), unit.SineHz(329.63)), 0.2),
				unit.Gain(unit.Mix(unit.SineHz(329.63), unit.SineHz(392)), 0.2),
			)
		}),
		mode: dspgraph.Static(2),
	},
	{
		graph: dspgraph.Named("noise", func() unit.Unit {
			return unit.Split(unit.Gain(unit.Lowpass(unit.Noise(), unit.Param(cutoff, 1000)), 0.2))
		}),
		mode: dspgraph.Dynamic(),
	},
}

// registry returns a registry with demo graphs. If duration is positive,
// every graph is registered as static with this duration.
func registry(sampleRate, duration float32, logger log.Logger) *dspgraph.Registry {
	r := dspgraph.NewRegistry(
		dspgraph.WithSampleRate(sampleRate),
		dspgraph.WithLogger(logger),
	)
	for _, d := range demos {
		mode := d.mode
		if duration > 0 {
			mode = dspgraph.Static(duration)
		}
		r.Add(d.graph, mode)
	}
	return r
}
