package goaudio_test

import (
	"errors"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/backend"
	"github.com/pipelined/dspgraph/backend/goaudio"
	"github.com/pipelined/dspgraph/internal/mock"
	"github.com/pipelined/dspgraph/log"
	"github.com/pipelined/dspgraph/unit"
)

func registry(sampleRate float32) *dspgraph.Registry {
	return dspgraph.NewRegistry(dspgraph.WithLogger(log.Silent()), dspgraph.WithSampleRate(sampleRate))
}

func TestAsset(t *testing.T) {
	r := registry(8000)
	id := r.Add(dspgraph.Named("goaudio.asset", func() unit.Unit {
		return unit.Stereo(unit.Constant(0.5), unit.Constant(-0.5))
	}), dspgraph.Static(0.01))

	assets, err := backend.Load[*audio.IntBuffer, *goaudio.Source](goaudio.New(log.Silent()), r)
	assert.NoError(t, err)
	ib := assets[id]
	assert.NotNil(t, ib)
	assert.Equal(t, 8000, ib.Format.SampleRate)
	assert.Equal(t, 2, ib.Format.NumChannels)
	assert.Equal(t, 80, ib.NumFrames())
	assert.Equal(t, []int{16384, -16384}, ib.Data[:2])
}

func TestAssetModeMismatch(t *testing.T) {
	r := registry(8000)
	id := r.Add(dspgraph.Named("goaudio.dynamic", func() unit.Unit {
		return unit.Split(unit.Constant(0))
	}), dspgraph.Dynamic())
	d, _ := r.Lookup(id)

	_, err := goaudio.New(log.Silent()).Asset(d)
	assert.True(t, errors.Is(err, dspgraph.ErrModeMismatch))
}

func TestSource(t *testing.T) {
	tests := []struct {
		name        string
		numChannels int
		size        int
		expected    []float32
		n           int
	}{
		{
			name:        "stereo",
			numChannels: 2,
			size:        6,
			expected:    []float32{0, 0, 1, -1, 2, -2},
			n:           6,
		},
		{
			name:        "mono",
			numChannels: 1,
			size:        3,
			expected:    []float32{0, 1, 2},
			n:           3,
		},
		{
			name:        "surround",
			numChannels: 3,
			size:        7,
			expected:    []float32{0, 0, 0, 1, -1, 0, 9},
			n:           6,
		},
	}
	for _, test := range tests {
		var builds mock.Builds
		r := registry(8)
		id := r.Add(dspgraph.Named("goaudio.source."+test.name, builds.Ramp(1)), dspgraph.Dynamic())

		source, s, err := backend.Source[*audio.IntBuffer, *goaudio.Source](goaudio.New(log.Silent()), r, id)
		assert.NoError(t, err, test.name)

		b := &audio.Float32Buffer{
			Format: &audio.Format{NumChannels: test.numChannels, SampleRate: 8},
			Data:   make([]float32, test.size),
		}
		b.Data[test.size-1] = 9
		n, err := source.Read(b)
		assert.NoError(t, err, test.name)
		assert.Equal(t, test.n, n, test.name)
		assert.Equal(t, test.expected, b.Data, test.name)
		s.Close()
	}
}

func TestSourceFormat(t *testing.T) {
	r := registry(8)
	id := r.Add(dspgraph.Named("goaudio.format", func() unit.Unit {
		return unit.Split(unit.Constant(0))
	}), dspgraph.Dynamic())
	s, _ := r.Stream(id)
	defer s.Close()

	source := goaudio.NewSource(s)
	assert.Equal(t, &audio.Format{NumChannels: 2, SampleRate: 8}, source.Format())

	_, err := source.Read(&audio.Float32Buffer{Data: make([]float32, 2)})
	assert.True(t, errors.Is(err, goaudio.ErrFormat))
}
