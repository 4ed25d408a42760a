package unit

import "math"

// waveform maps a phase in range [0, 1) to a sample.
type waveform func(phase float64) float32

type oscillator struct {
	freq       Signal
	wave       waveform
	sampleRate float64
	phase      float64
}

func newOscillator(freq Signal, wave waveform) Signal {
	return &oscillator{freq: freq, wave: wave}
}

// Sine returns a sine oscillator driven by the frequency signal in Hz.
func Sine(freq Signal) Signal {
	return newOscillator(freq, sine)
}

// SineHz returns a sine oscillator with a fixed frequency.
func SineHz(hz float32) Signal {
	return Sine(Constant(hz))
}

// Triangle returns a triangle oscillator driven by the frequency signal.
func Triangle(freq Signal) Signal {
	return newOscillator(freq, triangle)
}

// TriangleHz returns a triangle oscillator with a fixed frequency.
func TriangleHz(hz float32) Signal {
	return Triangle(Constant(hz))
}

// Square returns a square oscillator driven by the frequency signal.
func Square(freq Signal) Signal {
	return newOscillator(freq, square)
}

// SquareHz returns a square oscillator with a fixed frequency.
func SquareHz(hz float32) Signal {
	return Square(Constant(hz))
}

// Saw returns a sawtooth oscillator driven by the frequency signal.
func Saw(freq Signal) Signal {
	return newOscillator(freq, saw)
}

// SawHz returns a sawtooth oscillator with a fixed frequency.
func SawHz(hz float32) Signal {
	return Saw(Constant(hz))
}

func (o *oscillator) Init(c *Config) {
	o.freq.Init(c)
	o.sampleRate = float64(c.SampleRate)
	o.phase = 0
}

func (o *oscillator) Process() float32 {
	v := o.wave(o.phase)
	o.phase += float64(o.freq.Process()) / o.sampleRate
	o.phase -= math.Floor(o.phase)
	return v
}

func (o *oscillator) Set(tag Tag, value float64) {
	set(o.freq, tag, value)
}

func (o *oscillator) Get(tag Tag) (float64, bool) {
	return get(o.freq, tag)
}

func sine(phase float64) float32 {
	return float32(math.Sin(2 * math.Pi * phase))
}

func triangle(phase float64) float32 {
	return float32(1 - 4*math.Abs(phase-0.5))
}

func square(phase float64) float32 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func saw(phase float64) float32 {
	return float32(2*phase - 1)
}
