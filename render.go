package dspgraph

import (
	"fmt"
	"math"

	"github.com/pipelined/dspgraph/metric"
	"github.com/pipelined/dspgraph/signal"
	"github.com/pipelined/dspgraph/wav"
)

// Render builds a new instance of the static graph and renders it into a
// wav container with 16-bit stereo samples. Dynamic graphs have no
// duration and result in ErrModeMismatch.
func Render(d *Descriptor) ([]byte, error) {
	frames, err := RenderFrames(d)
	if err != nil {
		return nil, err
	}
	data, err := wav.Encode(frames, int(math.Round(float64(d.sampleRate))))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", d.name, err)
	}
	return data, nil
}

// MustRender is like Render but panics if graph cannot be rendered.
func MustRender(d *Descriptor) []byte {
	data, err := Render(d)
	if err != nil {
		panic(fmt.Sprintf("dspgraph: %v", err))
	}
	return data
}

// RenderFrames builds a new instance of the static graph and returns
// exactly round(sampleRate * duration) frames of it. Negative and NaN
// durations result in no frames.
func RenderFrames(d *Descriptor) (signal.Stereo, error) {
	duration, ok := d.mode.Duration()
	if !ok {
		return nil, fmt.Errorf("render %s %s: %w", d.name, d.mode, ErrModeMismatch)
	}
	if math.IsInf(float64(duration), 0) {
		return nil, fmt.Errorf("render %s %s: %w", d.name, d.mode, ErrInvalidDuration)
	}
	u := d.instantiate()
	frames := make(signal.Stereo, signal.FrameCount(d.sampleRate, duration))
	for i := range frames {
		frames[i] = u.Stereo()
	}
	metric.Meter(d.name, d.sampleRate)()(int64(len(frames)), 0)
	metric.Rendered(d.name)
	d.log.Debug(fmt.Sprintf("rendered graph %s: %d frames", d.name, len(frames)))
	return frames, nil
}
