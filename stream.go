package dspgraph

import (
	"fmt"
	"runtime"

	"github.com/rs/xid"

	"github.com/pipelined/dspgraph/metric"
	"github.com/pipelined/dspgraph/param"
	"github.com/pipelined/dspgraph/signal"
	"github.com/pipelined/dspgraph/unit"
)

// Stream is a running instance of a graph. It's infinite: frames can be
// pulled as long as stream is referenced, even for static graphs.
//
// Stream must be pulled from a single goroutine. Parameters can be changed
// from any goroutine with the producer returned by Control.
type Stream struct {
	id       xid.ID
	desc     *Descriptor
	unit     unit.Unit
	consumer *param.Consumer
	producer param.Producer
	measure  metric.MeasureFunc
	updates  int64
	pending  int64
}

// meterInterval is the number of frames pulled one by one between
// measurements.
const meterInterval = 512

// Mono is a single channel view of the stream. It reads the graph's own
// mono output rather than averaging stereo frames.
type Mono struct {
	s *Stream
}

// NewStream builds a new graph instance and returns a stream of it.
func NewStream(d *Descriptor) *Stream {
	producer, consumer := param.Split(d.capacity)
	s := &Stream{
		id:       xid.New(),
		desc:     d,
		unit:     d.instantiate(),
		consumer: consumer,
		producer: producer,
		measure:  metric.Meter(d.name, d.sampleRate)(),
	}
	// stop delivery to producers that outlive the stream.
	runtime.SetFinalizer(s, (*Stream).Close)
	d.log.Debug(fmt.Sprintf("stream %s of graph %s started", s.id, d.name))
	return s
}

// ID returns unique id of the stream instance.
func (s *Stream) ID() string {
	return s.id.String()
}

// Descriptor returns descriptor of the stream graph.
func (s *Stream) Descriptor() *Descriptor {
	return s.desc
}

// SampleRate returns sample rate of the stream.
func (s *Stream) SampleRate() float32 {
	return s.desc.sampleRate
}

// Control returns a producer of parameter updates for this stream. The
// producer can be copied and used from multiple goroutines.
func (s *Stream) Control() param.Producer {
	return s.producer
}

// Get returns current value of the tagged parameter. It must be called
// from the goroutine that pulls the stream.
func (s *Stream) Get(tag unit.Tag) (float64, bool) {
	return s.unit.Get(tag)
}

// Next applies pending parameter updates and returns next frame.
func (s *Stream) Next() [2]float32 {
	s.drain()
	f := s.unit.Stereo()
	s.tick()
	return f
}

// Fill replaces every frame of the buffer with the next frame.
func (s *Stream) Fill(frames [][2]float32) {
	for i := range frames {
		s.drain()
		frames[i] = s.unit.Stereo()
	}
	s.meter(int64(len(frames)))
}

// Advance discards frames produced in dt seconds. It keeps time dependent
// state in sync after the stream was paused.
func (s *Stream) Advance(dt float32) {
	n := signal.FrameCount(s.desc.sampleRate, dt)
	for i := 0; i < n; i++ {
		s.drain()
		s.unit.Stereo()
	}
	s.meter(int64(n))
}

// Mono returns mono view of the stream. Only one view should be pulled
// for a single stream.
func (s *Stream) Mono() *Mono {
	return &Mono{s: s}
}

// Close stops delivery of parameter updates. Producers of closed stream
// become no-ops. Close is called when stream is garbage collected.
func (s *Stream) Close() {
	if s.producer.Closed() {
		return
	}
	s.consumer.Close()
	runtime.SetFinalizer(s, nil)
	if s.pending > 0 {
		s.meter(0)
	}
	s.desc.log.Debug(fmt.Sprintf("stream %s of graph %s closed", s.id, s.desc.name))
}

func (s *Stream) drain() {
	s.updates += int64(s.consumer.Drain(s.unit))
}

// tick counts a single pulled frame.
func (s *Stream) tick() {
	s.pending++
	if s.pending == meterInterval {
		s.meter(0)
	}
}

// meter measures frames together with pending single frames.
func (s *Stream) meter(frames int64) {
	s.measure(s.pending+frames, s.updates)
	s.pending, s.updates = 0, 0
}

// Next applies pending parameter updates and returns next mono frame.
func (m *Mono) Next() float32 {
	m.s.drain()
	v := m.s.unit.Mono()
	m.s.tick()
	return v
}

// Fill replaces every frame of the buffer with the next mono frame.
func (m *Mono) Fill(frames []float32) {
	for i := range frames {
		m.s.drain()
		frames[i] = m.s.unit.Mono()
	}
	m.s.meter(int64(len(frames)))
}

// Advance discards mono frames produced in dt seconds.
func (m *Mono) Advance(dt float32) {
	n := signal.FrameCount(m.s.desc.sampleRate, dt)
	for i := 0; i < n; i++ {
		m.s.drain()
		m.s.unit.Mono()
	}
	m.s.meter(int64(n))
}

// Stream returns underlying stream.
func (m *Mono) Stream() *Stream {
	return m.s
}

// SampleRate returns sample rate of the stream.
func (m *Mono) SampleRate() float32 {
	return m.s.SampleRate()
}

// Control returns a producer of parameter updates for the stream.
func (m *Mono) Control() param.Producer {
	return m.s.Control()
}

// Close closes underlying stream.
func (m *Mono) Close() {
	m.s.Close()
}
