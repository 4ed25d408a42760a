// Package goaudio converts graphs into go-audio buffers.
package goaudio

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/backend"
	"github.com/pipelined/dspgraph/log"
	"github.com/pipelined/dspgraph/wav"
)

// ErrFormat is returned when buffer has no format.
var ErrFormat = errors.New("buffer format is not provided")

type (
	// Backend converts static graphs into int buffers and dynamic graphs
	// into float buffer readers.
	Backend struct {
		log log.Logger
	}

	// Source fills float buffers with frames of the stream. Buffers with
	// a single channel receive the mono output of the graph.
	Source struct {
		stream *dspgraph.Stream
		mono   *dspgraph.Mono
		stereo [][2]float32
		buf    []float32
	}
)

var _ backend.Backend[*audio.IntBuffer, *Source] = (*Backend)(nil)

// New returns a new go-audio backend.
func New(logger log.Logger) *Backend {
	return &Backend{log: logger}
}

// Init checks that every graph sample rate is integral.
func (b *Backend) Init(r *dspgraph.Registry) error {
	if err := backend.ValidateSampleRates(r); err != nil {
		return err
	}
	b.log.Debug(fmt.Sprintf("go-audio backend: %d graphs", r.Len()))
	return nil
}

// Asset renders static graph into 16-bit int buffer.
func (b *Backend) Asset(d *dspgraph.Descriptor) (*audio.IntBuffer, error) {
	data, err := dspgraph.Render(d)
	if err != nil {
		return nil, err
	}
	ib, _, err := wav.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", d.Name(), err)
	}
	return ib, nil
}

// Source returns reader of the stream.
func (b *Backend) Source(s *dspgraph.Stream) *Source {
	return NewSource(s)
}

// NewSource returns reader of the stream.
func NewSource(s *dspgraph.Stream) *Source {
	return &Source{
		stream: s,
		mono:   s.Mono(),
	}
}

// Format returns stereo format of the stream.
func (s *Source) Format() *audio.Format {
	return &audio.Format{
		NumChannels: 2,
		SampleRate:  int(s.stream.SampleRate() + 0.5),
	}
}

// Read fills the whole buffer with interleaved frames and returns the
// number of written samples. Channels above the second are silent. The
// trailing partial frame is left untouched.
func (s *Source) Read(b *audio.Float32Buffer) (int, error) {
	if b.Format == nil || b.Format.NumChannels <= 0 {
		return 0, ErrFormat
	}
	numChannels := b.Format.NumChannels
	frames := len(b.Data) / numChannels
	if numChannels == 1 {
		if cap(s.buf) < frames {
			s.buf = make([]float32, frames)
		}
		buf := s.buf[:frames]
		s.mono.Fill(buf)
		copy(b.Data, buf)
		return frames, nil
	}

	if cap(s.stereo) < frames {
		s.stereo = make([][2]float32, frames)
	}
	stereo := s.stereo[:frames]
	s.stream.Fill(stereo)
	for i, f := range stereo {
		frame := b.Data[i*numChannels : (i+1)*numChannels]
		frame[0], frame[1] = f[0], f[1]
		for c := 2; c < numChannels; c++ {
			frame[c] = 0
		}
	}
	return frames * numChannels, nil
}
