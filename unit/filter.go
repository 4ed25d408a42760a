package unit

import "math"

type (
	// lowpass is a one-pole RC filter.
	lowpass struct {
		in, cutoff Signal
		dt         float64
		fc         float32
		alpha      float64
		y          float64
	}

	// butterworth is a second order lowpass with Q = 1/sqrt(2).
	butterworth struct {
		in, cutoff         Signal
		sampleRate         float64
		fc                 float32
		b0, b1, b2, a1, a2 float64
		x1, x2, y1, y2     float64
	}
)

// Lowpass returns a one-pole lowpass filter of the input signal. Cutoff
// frequency is read on every tick.
func Lowpass(in, cutoff Signal) Signal {
	return &lowpass{in: in, cutoff: cutoff}
}

func (f *lowpass) Init(c *Config) {
	f.in.Init(c)
	f.cutoff.Init(c)
	f.dt = 1 / float64(c.SampleRate)
	f.fc = -1
	f.y = 0
}

func (f *lowpass) Process() float32 {
	x := f.in.Process()
	if fc := f.cutoff.Process(); fc != f.fc {
		f.fc = fc
		rc := 1 / (2 * math.Pi * float64(fc))
		f.alpha = f.dt / (rc + f.dt)
	}
	f.y += f.alpha * (float64(x) - f.y)
	return float32(f.y)
}

func (f *lowpass) Set(tag Tag, value float64) {
	set(f.in, tag, value)
	set(f.cutoff, tag, value)
}

func (f *lowpass) Get(tag Tag) (float64, bool) {
	if v, ok := get(f.in, tag); ok {
		return v, true
	}
	return get(f.cutoff, tag)
}

// Butterworth returns a second order lowpass filter of the input signal.
// Coefficients are recalculated only when the cutoff changes.
func Butterworth(in, cutoff Signal) Signal {
	return &butterworth{in: in, cutoff: cutoff}
}

func (f *butterworth) Init(c *Config) {
	f.in.Init(c)
	f.cutoff.Init(c)
	f.sampleRate = float64(c.SampleRate)
	f.fc = -1
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
}

func (f *butterworth) Process() float32 {
	x := float64(f.in.Process())
	if fc := f.cutoff.Process(); fc != f.fc {
		f.fc = fc
		f.coefficients(float64(fc))
	}
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return float32(y)
}

func (f *butterworth) coefficients(fc float64) {
	wc := 2 * math.Pi * fc / f.sampleRate
	cosw := math.Cos(wc)
	alpha := math.Sin(wc) / math.Sqrt2

	a0 := 1 + alpha
	f.b0 = (1 - cosw) / 2 / a0
	f.b1 = (1 - cosw) / a0
	f.b2 = f.b0
	f.a1 = -2 * cosw / a0
	f.a2 = (1 - alpha) / a0
}

func (f *butterworth) Set(tag Tag, value float64) {
	set(f.in, tag, value)
	set(f.cutoff, tag, value)
}

func (f *butterworth) Get(tag Tag) (float64, bool) {
	if v, ok := get(f.in, tag); ok {
		return v, true
	}
	return get(f.cutoff, tag)
}
