// Package mock provides mock units and graphs for tests.
package mock

import (
	"sync/atomic"

	"github.com/pipelined/dspgraph/param"
	"github.com/pipelined/dspgraph/unit"
)

// StepTag is the tag of the ramp step parameter.
const StepTag unit.Tag = 1

// Ramp mocks a unit which output grows by Step on every frame. Left
// channel is the value, right channel is the negated value. Mono output
// is the value.
type Ramp struct {
	counter
	Step       float64
	SampleRate float32
	Inited     bool
	value      float64
	Recorder
}

// Init implements unit.Unit.
func (m *Ramp) Init(c *unit.Config) {
	m.Inited = true
	m.SampleRate = c.SampleRate
	m.value = 0
	m.reset()
}

// Stereo implements unit.Unit.
func (m *Ramp) Stereo() [2]float32 {
	v := float32(m.next())
	return [2]float32{v, -v}
}

// Mono implements unit.Unit.
func (m *Ramp) Mono() float32 {
	return float32(m.next())
}

// Set implements unit.Parametric. Every update is recorded.
func (m *Ramp) Set(tag unit.Tag, value float64) {
	m.Recorder.Set(tag, value)
	if tag == StepTag {
		m.Step = value
	}
}

// Get implements unit.Parametric.
func (m *Ramp) Get(tag unit.Tag) (float64, bool) {
	if tag == StepTag {
		return m.Step, true
	}
	return 0, false
}

func (m *Ramp) next() float64 {
	v := m.value
	m.value += m.Step
	m.advance()
	return v
}

// Builds counts calls of the build function.
type Builds struct {
	n int64
}

// Ramp returns a build function of ramps with provided step.
func (b *Builds) Ramp(step float64) func() unit.Unit {
	return func() unit.Unit {
		atomic.AddInt64(&b.n, 1)
		return &Ramp{Step: step}
	}
}

// Count returns number of built instances.
func (b *Builds) Count() int {
	return int(atomic.LoadInt64(&b.n))
}

// counter counts produced frames.
type counter struct {
	frames int
}

func (c *counter) reset() {
	c.frames = 0
}

func (c *counter) advance() {
	c.frames++
}

// Frames returns number of produced frames.
func (c *counter) Frames() int {
	return c.frames
}

// Recorder records applied parameter updates.
type Recorder struct {
	Updates []param.Update
}

// Set implements param.Setter.
func (r *Recorder) Set(tag unit.Tag, value float64) {
	r.Updates = append(r.Updates, param.Update{Tag: tag, Value: value})
}
