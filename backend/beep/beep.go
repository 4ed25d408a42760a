// Package beep plays graphs with gopxl/beep engine.
package beep

import (
	"bytes"
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/backend"
	"github.com/pipelined/dspgraph/log"
)

// precision of rendered assets in bytes.
const precision = 2

type (
	// Backend converts graphs into beep streamers.
	Backend struct {
		log log.Logger
	}

	// Asset is a rendered static graph.
	Asset struct {
		Streamer beep.StreamSeekCloser
		Format   beep.Format
	}

	// Source is an infinite beep.Streamer of the graph stream.
	Source struct {
		stream *dspgraph.Stream
		buf    [][2]float32
	}

	// MonoSource is an infinite beep.Streamer of the mono stream. The mono
	// frame is played in both channels.
	MonoSource struct {
		mono *dspgraph.Mono
		buf  []float32
	}
)

var _ backend.Backend[Asset, *Source] = (*Backend)(nil)

// New returns a new beep backend.
func New(logger log.Logger) *Backend {
	return &Backend{log: logger}
}

// Init checks that every graph can be played by beep.
func (b *Backend) Init(r *dspgraph.Registry) error {
	if err := backend.ValidateSampleRates(r); err != nil {
		return err
	}
	b.log.Debug(fmt.Sprintf("beep backend: %d graphs", r.Len()))
	return nil
}

// Asset renders static graph and decodes it with beep.
func (b *Backend) Asset(d *dspgraph.Descriptor) (Asset, error) {
	if _, err := backend.SampleRate(d); err != nil {
		return Asset{}, err
	}
	data, err := dspgraph.Render(d)
	if err != nil {
		return Asset{}, err
	}
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return Asset{}, fmt.Errorf("error decoding %s: %w", d.Name(), err)
	}
	return Asset{Streamer: streamer, Format: format}, nil
}

// Source returns streamer of the stream.
func (b *Backend) Source(s *dspgraph.Stream) *Source {
	return NewSource(s)
}

// NewSource returns streamer of the stream.
func NewSource(s *dspgraph.Stream) *Source {
	return &Source{stream: s}
}

// NewMonoSource returns streamer of the mono stream.
func NewMonoSource(m *dspgraph.Mono) *MonoSource {
	return &MonoSource{mono: m}
}

// Stream implements beep.Streamer. It never drains.
func (s *Source) Stream(samples [][2]float64) (int, bool) {
	if cap(s.buf) < len(samples) {
		s.buf = make([][2]float32, len(samples))
	}
	buf := s.buf[:len(samples)]
	s.stream.Fill(buf)
	for i := range buf {
		samples[i][0] = float64(buf[i][0])
		samples[i][1] = float64(buf[i][1])
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Source) Err() error {
	return nil
}

// Format returns format of the streamed signal.
func (s *Source) Format() beep.Format {
	return format(s.stream.SampleRate())
}

// Stream implements beep.Streamer. It never drains.
func (s *MonoSource) Stream(samples [][2]float64) (int, bool) {
	if cap(s.buf) < len(samples) {
		s.buf = make([]float32, len(samples))
	}
	buf := s.buf[:len(samples)]
	s.mono.Fill(buf)
	for i, v := range buf {
		samples[i][0] = float64(v)
		samples[i][1] = float64(v)
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *MonoSource) Err() error {
	return nil
}

// Format returns format of the streamed signal.
func (s *MonoSource) Format() beep.Format {
	return format(s.mono.SampleRate())
}

func format(sampleRate float32) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(int(sampleRate + 0.5)),
		NumChannels: 2,
		Precision:   precision,
	}
}
