// Package unit provides building blocks for signal graphs.
//
// A graph is composed from Signal nodes: sources, oscillators, filters and
// combinators. Each node produces one sample per tick. The outermost node
// is wrapped into a Unit with Split or Stereo, which gives the graph its
// stereo and mono outputs:
//
//	sine := unit.Split(unit.Gain(unit.Sine(unit.Param(pitch, 440)), 0.2))
//
// Units are stateful and must be owned by a single goroutine. The only
// safe way to change a running unit from another goroutine is either a
// Shared variable or the param package.
package unit

import (
	"math/rand"
)

type (
	// Tag names a live-controllable parameter inside a graph.
	Tag int64

	// Config carries instance properties to the graph nodes.
	Config struct {
		SampleRate float32
		Rand       *rand.Rand
	}

	// Signal produces a sample on every Process call. Init must be called
	// before the first Process.
	Signal interface {
		Init(*Config)
		Process() float32
	}

	// Parametric is implemented by signals that expose tagged parameters.
	// Combinators forward calls to their inputs, so setting a tag on the
	// outermost node reaches every node with that tag.
	Parametric interface {
		Set(tag Tag, value float64)
		Get(tag Tag) (float64, bool)
	}

	// Unit is a running graph instance. Stereo and Mono both advance the
	// instance by one tick, they are distinct views of the same state.
	Unit interface {
		Parametric
		Init(*Config)
		Stereo() [2]float32
		Mono() float32
	}
)

// GetRand returns the random source shared by all nodes of an instance.
// The source is seeded with a constant so renders are reproducible.
func (c *Config) GetRand() *rand.Rand {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(1))
	}
	return c.Rand
}

func set(s Signal, tag Tag, value float64) {
	if p, ok := s.(Parametric); ok {
		p.Set(tag, value)
	}
}

func get(s Signal, tag Tag) (float64, bool) {
	if p, ok := s.(Parametric); ok {
		return p.Get(tag)
	}
	return 0, false
}

type (
	split struct {
		in Signal
	}

	stereo struct {
		left, right Signal
	}
)

// Split turns a mono signal into a unit with both channels equal.
func Split(in Signal) Unit {
	return &split{in: in}
}

func (u *split) Init(c *Config) {
	u.in.Init(c)
}

func (u *split) Stereo() [2]float32 {
	v := u.in.Process()
	return [2]float32{v, v}
}

func (u *split) Mono() float32 {
	return u.in.Process()
}

func (u *split) Set(tag Tag, value float64) {
	set(u.in, tag, value)
}

func (u *split) Get(tag Tag) (float64, bool) {
	return get(u.in, tag)
}

// Stereo makes a unit from two independent channels. Its mono output is
// the average of both channels.
func Stereo(left, right Signal) Unit {
	return &stereo{left: left, right: right}
}

func (u *stereo) Init(c *Config) {
	u.left.Init(c)
	u.right.Init(c)
}

func (u *stereo) Stereo() [2]float32 {
	return [2]float32{u.left.Process(), u.right.Process()}
}

func (u *stereo) Mono() float32 {
	return (u.left.Process() + u.right.Process()) / 2
}

func (u *stereo) Set(tag Tag, value float64) {
	set(u.left, tag, value)
	set(u.right, tag, value)
}

func (u *stereo) Get(tag Tag) (float64, bool) {
	if v, ok := get(u.left, tag); ok {
		return v, true
	}
	return get(u.right, tag)
}
