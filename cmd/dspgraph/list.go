package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/log"
)

type listCommand struct {
	sampleRate float64
}

func (cmd *listCommand) Name() string {
	return "list"
}

func (cmd *listCommand) Help() string {
	return "Show the list of available graphs"
}

func (cmd *listCommand) Register(fs *flag.FlagSet) {
	fs.Float64Var(&cmd.sampleRate, "rate", float64(dspgraph.DefaultSampleRate), "sample rate of graphs")
}

func (cmd *listCommand) Run(out io.Writer) error {
	r := registry(float32(cmd.sampleRate), 0, log.GetLogger())
	fmt.Fprintln(out, "Available graphs:")
	r.Each(func(d *dspgraph.Descriptor) {
		fmt.Fprintf(out, "\t%s\t%s\t%s\t%gHz\n", d.Name(), d.ID(), d.Mode(), d.SampleRate())
	})
	return nil
}
