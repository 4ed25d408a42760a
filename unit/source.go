package unit

import (
	"math"
	"math/rand"
	"sync/atomic"
)

type (
	constant struct {
		value float32
	}

	param struct {
		tag   Tag
		value float64
	}

	variable struct {
		shared *Shared
	}

	noise struct {
		rand *rand.Rand
	}
)

// Constant returns a signal with a fixed value.
func Constant(value float32) Signal {
	return &constant{value: value}
}

func (s *constant) Init(*Config) {}

func (s *constant) Process() float32 {
	return s.value
}

// Param returns a constant signal which value can be changed with the tag.
func Param(tag Tag, value float64) Signal {
	return &param{tag: tag, value: value}
}

func (s *param) Init(*Config) {}

func (s *param) Process() float32 {
	return float32(s.value)
}

func (s *param) Set(tag Tag, value float64) {
	if tag == s.tag {
		s.value = value
	}
}

func (s *param) Get(tag Tag) (float64, bool) {
	if tag == s.tag {
		return s.value, true
	}
	return 0, false
}

// Shared is a value that can be read by running graphs and written from
// any goroutine. Unlike tags, shared values are not bound to a single
// instance: every graph built with Var of the same Shared observes writes.
type Shared struct {
	bits uint32
}

// NewShared returns a shared value initialised with v.
func NewShared(v float32) *Shared {
	return &Shared{bits: math.Float32bits(v)}
}

// Set stores a new value.
func (s *Shared) Set(v float32) {
	atomic.StoreUint32(&s.bits, math.Float32bits(v))
}

// Value returns current value.
func (s *Shared) Value() float32 {
	return math.Float32frombits(atomic.LoadUint32(&s.bits))
}

// Var returns a signal that follows the shared value.
func Var(shared *Shared) Signal {
	return &variable{shared: shared}
}

func (s *variable) Init(*Config) {}

func (s *variable) Process() float32 {
	return s.shared.Value()
}

// Noise returns white noise in range [-1, 1).
func Noise() Signal {
	return &noise{}
}

func (s *noise) Init(c *Config) {
	s.rand = c.GetRand()
}

func (s *noise) Process() float32 {
	return 2*s.rand.Float32() - 1
}
