// Package wav packs rendered frames into PCM wav containers.
package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"

	"github.com/pipelined/dspgraph/signal"
)

// BitDepth of encoded samples.
const BitDepth = signal.BitDepth16

// pcmFormat is a wav audio format code for integer PCM.
const pcmFormat = 1

// ErrInvalid is returned when decoded data is not a valid wav container.
var ErrInvalid = errors.New("wav is not valid")

// Info describes the decoded container.
type Info struct {
	SampleRate  int
	NumChannels int
	BitDepth    signal.BitDepth
	Frames      int
	Duration    time.Duration
}

// Encode returns a wav container with 16-bit stereo samples.
func Encode(frames signal.Stereo, sampleRate int) ([]byte, error) {
	return encode(frames.AsInterInt(BitDepth), sampleRate)
}

// EncodeMono returns a wav container with 16-bit mono samples.
func EncodeMono(frames signal.Mono, sampleRate int) ([]byte, error) {
	return encode(frames.AsInterInt(BitDepth), sampleRate)
}

func encode(ints signal.InterInt, sampleRate int) ([]byte, error) {
	// encoder seeks back to patch chunk sizes
	w := &writerseeker.WriterSeeker{}
	e := wav.NewEncoder(w, sampleRate, int(ints.BitDepth), ints.NumChannels, pcmFormat)
	ib := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: ints.NumChannels,
			SampleRate:  sampleRate,
		},
		Data:           ints.Data,
		SourceBitDepth: int(ints.BitDepth),
	}
	if err := e.Write(ib); err != nil {
		return nil, fmt.Errorf("error writing samples: %w", err)
	}
	if err := e.Close(); err != nil {
		return nil, fmt.Errorf("error closing encoder: %w", err)
	}
	data, err := io.ReadAll(w.Reader())
	if err != nil {
		return nil, fmt.Errorf("error reading encoded data: %w", err)
	}
	return data, nil
}

// Decode reads the whole wav container into int buffer.
func Decode(data []byte) (*audio.IntBuffer, Info, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, Info{}, ErrInvalid
	}
	ib, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, fmt.Errorf("error reading samples: %w", err)
	}
	info := Info{
		SampleRate:  int(decoder.SampleRate),
		NumChannels: int(decoder.NumChans),
		BitDepth:    signal.BitDepth(decoder.BitDepth),
		Frames:      ib.NumFrames(),
	}
	info.Duration = signal.DurationOf(float32(info.SampleRate), int64(info.Frames))
	return ib, info, nil
}

// DecodeStereo reads the whole wav container into stereo frames.
func DecodeStereo(data []byte) (signal.Stereo, Info, error) {
	ib, info, err := Decode(data)
	if err != nil {
		return nil, info, err
	}
	frames := signal.InterInt{
		Data:        ib.Data,
		NumChannels: info.NumChannels,
		BitDepth:    info.BitDepth,
	}.AsStereo()
	return frames, info, nil
}
