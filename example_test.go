package dspgraph_test

import (
	"fmt"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/log"
	"github.com/pipelined/dspgraph/unit"
)

// This example streams a dynamic graph and changes its parameter.
func Example_stream() {
	const level unit.Tag = 1

	r := dspgraph.NewRegistry(dspgraph.WithLogger(log.Silent()))
	id := r.Add(dspgraph.Named("level", func() unit.Unit {
		return unit.Split(unit.Param(level, 0.5))
	}), dspgraph.Dynamic())

	s, err := r.Stream(id)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	fmt.Println(s.Next())
	s.Control().Set(level, 0.25)
	fmt.Println(s.Next())
	fmt.Println(s.Mono().Next())
	// Output:
	// [0.5 0.5]
	// [0.25 0.25]
	// 0.25
}

// This example renders a static graph into wav container.
func Example_render() {
	r := dspgraph.NewRegistry(
		dspgraph.WithLogger(log.Silent()),
		dspgraph.WithSampleRate(8000),
	)
	id := r.Add(dspgraph.Named("beep", func() unit.Unit {
		return unit.Split(unit.Gain(unit.SineHz(440), 0.2))
	}), dspgraph.Static(0.01))

	data, err := r.Render(id)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data[:4]), len(data))
	// Output:
	// RIFF 364
}
