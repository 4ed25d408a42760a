package dspgraph_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/internal/mock"
	"github.com/pipelined/dspgraph/metric"
	"github.com/pipelined/dspgraph/unit"
	"github.com/pipelined/dspgraph/wav"
)

func TestRender(t *testing.T) {
	r := newRegistry(dspgraph.WithSampleRate(8000))
	id := r.Add(dspgraph.Named("render.sine", sine440), dspgraph.Static(0.5))

	data, err := r.Render(id)
	assert.NoError(t, err)
	assert.Equal(t, 44+4000*4, len(data))

	frames, info, err := wav.DecodeStereo(data)
	assert.NoError(t, err)
	assert.Equal(t, 8000, info.SampleRate)
	assert.Equal(t, 2, info.NumChannels)
	assert.Equal(t, 4000, info.Frames)
	assert.Equal(t, 500*time.Millisecond, info.Duration)
	assert.Equal(t, [2]float32{0, 0}, frames[0])
	for _, f := range frames {
		assert.Equal(t, f[0], f[1])
	}
	assert.Equal(t, "1", metric.Get("render.sine")[metric.RenderCounter])
}

func TestRenderFrames(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float32
		duration   float32
		frames     int
	}{
		{name: "render.frames.1", sampleRate: 8000, duration: 1, frames: 8000},
		{name: "render.frames.2", sampleRate: 44100, duration: 0.01, frames: 441},
		{name: "render.frames.3", sampleRate: 8, duration: 0.3, frames: 2},
		{name: "render.frames.4", sampleRate: 8, duration: 0, frames: 0},
		{name: "render.frames.5", sampleRate: 8000, duration: -1, frames: 0},
		{name: "render.frames.6", sampleRate: 8000, duration: float32(math.NaN()), frames: 0},
	}
	for _, test := range tests {
		var builds mock.Builds
		r := newRegistry()
		id := dspgraph.IdentityOf(test.name)
		r.Register(id, builds.Ramp(1), test.sampleRate, dspgraph.Static(test.duration))
		d, _ := r.Lookup(id)

		frames, err := dspgraph.RenderFrames(d)
		assert.NoError(t, err, test.name)
		assert.Equal(t, test.frames, len(frames), test.name)
		if len(frames) > 1 {
			assert.Equal(t, [2]float32{1, -1}, frames[1], test.name)
		}
		assert.Equal(t, 1, builds.Count(), test.name)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := newRegistry(dspgraph.WithSampleRate(8000))
	id := r.Add(dspgraph.Named("render.noise", func() unit.Unit {
		return unit.Split(unit.Gain(unit.Noise(), 0.2))
	}), dspgraph.Static(0.1))

	first, err := r.Render(id)
	assert.NoError(t, err)
	second, err := r.Render(id)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderFreshInstance(t *testing.T) {
	var builds mock.Builds
	r := newRegistry()
	id := dspgraph.IdentityOf("render.fresh")
	r.Register(id, builds.Ramp(1), 8, dspgraph.Static(1))

	// pulling a stream doesn't affect renders
	s, _ := r.Stream(id)
	defer s.Close()
	s.Control().Set(mock.StepTag, 3)
	s.Advance(1)

	d, _ := r.Lookup(id)
	frames, err := dspgraph.RenderFrames(d)
	assert.NoError(t, err)
	assert.Equal(t, [2]float32{7, -7}, frames[7])
	assert.Equal(t, 2, builds.Count())
}

func TestRenderFractionalSampleRate(t *testing.T) {
	r := newRegistry()
	id := dspgraph.IdentityOf("render.fractional")
	r.Register(id, sine440, 8000.4, dspgraph.Static(0.01))

	data, err := r.Render(id)
	assert.NoError(t, err)
	_, info, err := wav.Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, 8000, info.SampleRate)
	assert.Equal(t, 80, info.Frames)
}

func TestRenderModeMismatch(t *testing.T) {
	r := newRegistry()
	id := dspgraph.IdentityOf("render.dynamic")
	r.Register(id, sine440, 8000, dspgraph.Dynamic())
	d, _ := r.Lookup(id)

	_, err := r.Render(id)
	assert.True(t, errors.Is(err, dspgraph.ErrModeMismatch))
	_, err = dspgraph.RenderFrames(d)
	assert.True(t, errors.Is(err, dspgraph.ErrModeMismatch))
	assert.Panics(t, func() { dspgraph.MustRender(d) })

	// dynamic graphs are still streamed
	s := d.Stream()
	defer s.Close()
	s.Next()
}

func TestRenderInfiniteDuration(t *testing.T) {
	r := newRegistry()
	id := dspgraph.IdentityOf("render.infinite")
	r.Register(id, sine440, 8000, dspgraph.Static(float32(math.Inf(1))))

	_, err := r.Render(id)
	assert.True(t, errors.Is(err, dspgraph.ErrInvalidDuration))
}
