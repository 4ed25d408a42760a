// Package signal provides frame buffers and conversions used to package
// rendered graphs:
//	- frame count and duration arithmetic
//	- conversion of float frames to interleaved int samples and back
package signal

import (
	"math"
	"time"
)

type (
	// Stereo is a buffer of stereo frames.
	Stereo [][2]float32

	// Mono is a buffer of mono frames.
	Mono []float32

	// InterInt is an interleaved int signal.
	InterInt struct {
		Data        []int
		NumChannels int
		BitDepth
	}

	// BitDepth contains values required for int-to-float and backward conversion.
	BitDepth int
)

const (
	// BitDepth8 is 8 bit depth.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is 16 bit depth.
	BitDepth16 = BitDepth(16)
	// BitDepth32 is 32 bit depth.
	BitDepth32 = BitDepth(32)
)

// max returns the largest int value for this bit depth.
func (bitDepth BitDepth) max() float64 {
	switch bitDepth {
	case BitDepth8:
		return math.MaxInt8
	case BitDepth16:
		return math.MaxInt16
	case BitDepth32:
		return math.MaxInt32
	default:
		return 1
	}
}

// FrameCount returns number of frames that fit into the duration in
// seconds at the sample rate, rounded to the nearest frame. Negative and
// non-finite durations fit no frames.
func FrameCount(sampleRate, seconds float32) int {
	f := math.Round(float64(sampleRate) * float64(seconds))
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return int(f)
}

// DurationOf returns time duration of frames for this sample rate,
// rounded to nanoseconds.
func DurationOf(sampleRate float32, frames int64) time.Duration {
	return time.Duration(math.Round(float64(frames) / float64(sampleRate) * float64(time.Second)))
}

// Size returns number of frames.
func (s Stereo) Size() int {
	return len(s)
}

// AsInterInt converts stereo frames to interleaved int samples. Values
// outside of [-1, 1] are clipped.
func (s Stereo) AsInterInt(bitDepth BitDepth) InterInt {
	max := bitDepth.max()
	ints := make([]int, 0, len(s)*2)
	for _, f := range s {
		ints = append(ints, quantize(f[0], max), quantize(f[1], max))
	}
	return InterInt{
		Data:        ints,
		NumChannels: 2,
		BitDepth:    bitDepth,
	}
}

// AsInterInt converts mono frames to int samples. Values outside of
// [-1, 1] are clipped.
func (m Mono) AsInterInt(bitDepth BitDepth) InterInt {
	max := bitDepth.max()
	ints := make([]int, len(m))
	for i, v := range m {
		ints[i] = quantize(v, max)
	}
	return InterInt{
		Data:        ints,
		NumChannels: 1,
		BitDepth:    bitDepth,
	}
}

// Size returns number of frames in the interleaved signal.
func (ints InterInt) Size() int {
	if ints.NumChannels == 0 {
		return 0
	}
	return len(ints.Data) / ints.NumChannels
}

// AsStereo converts interleaved int samples to stereo frames. Mono signal
// is duplicated into both channels, channels above the second are ignored.
func (ints InterInt) AsStereo() Stereo {
	if ints.Data == nil || ints.NumChannels == 0 {
		return nil
	}
	max := ints.BitDepth.max()
	frames := make(Stereo, ints.Size())
	for i := range frames {
		left := ints.Data[i*ints.NumChannels]
		right := left
		if ints.NumChannels > 1 {
			right = ints.Data[i*ints.NumChannels+1]
		}
		frames[i] = [2]float32{float32(float64(left) / max), float32(float64(right) / max)}
	}
	return frames
}

func quantize(v float32, max float64) int {
	f := float64(v)
	switch {
	case f > 1:
		f = 1
	case f < -1:
		f = -1
	}
	return int(math.Round(f * max))
}
