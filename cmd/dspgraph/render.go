package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/log"
	"github.com/pipelined/dspgraph/metric"
)

type renderCommand struct {
	graph      string
	out        string
	sampleRate float64
	duration   float64
}

func (cmd *renderCommand) Name() string {
	return "render"
}

func (cmd *renderCommand) Help() string {
	return "Render a static graph into wav file"
}

func (cmd *renderCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.graph, "graph", "", "name of graph to render (required)")
	fs.StringVar(&cmd.out, "out", "", "output wav file (required)")
	fs.Float64Var(&cmd.sampleRate, "rate", float64(dspgraph.DefaultSampleRate), "sample rate of rendered graph")
	fs.Float64Var(&cmd.duration, "duration", 0, "duration in seconds, makes dynamic graphs static")
}

func (cmd *renderCommand) Run(out io.Writer) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	r := registry(float32(cmd.sampleRate), float32(cmd.duration), log.GetLogger())
	data, err := r.Render(dspgraph.IdentityOf(cmd.graph))
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.out, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", cmd.out, err)
	}
	m := metric.Get(cmd.graph)
	fmt.Fprintf(out, "Rendered %s into %s: %s frames, %s\n", cmd.graph, cmd.out, m[metric.FrameCounter], m[metric.DurationCounter])
	return nil
}

func (cmd *renderCommand) Validate() error {
	var missing []string
	if cmd.graph == "" {
		missing = append(missing, "Missing -graph required flag")
	}
	if cmd.out == "" {
		missing = append(missing, "Missing -out required flag")
	}
	if cmd.sampleRate <= 0 {
		missing = append(missing, "Invalid -rate flag")
	}
	if cmd.duration < 0 {
		missing = append(missing, "Invalid -duration flag")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s", strings.Join(missing, "\n"))
	}
	return nil
}
