// Package metric exposes per-graph counters through expvar.
package metric

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pipelined/dspgraph/signal"
)

const graphsLabel = "dspgraph.graphs"

const (
	// InstanceCounter counts number of built graph instances.
	InstanceCounter = "Instances"
	// RenderCounter counts number of offline renders.
	RenderCounter = "Renders"
	// FrameCounter measures number of produced frames.
	FrameCounter = "Frames"
	// UpdateCounter measures number of applied parameter updates.
	UpdateCounter = "Updates"
	// LatencyCounter measures latency between pull calls.
	LatencyCounter = "Latency"
	// DurationCounter counts what's the duration of produced signal.
	DurationCounter = "Duration"
)

var (
	graphs = metrics{
		m: make(map[string]metric),
	}

	counters = []string{
		InstanceCounter,
		RenderCounter,
		FrameCounter,
		UpdateCounter,
		LatencyCounter,
		DurationCounter,
	}
)

// Get metrics values for provided graph.
func Get(graph string) map[string]string {
	return getCounters(graph)
}

// GetAll returns counters for all measured graphs.
func GetAll() map[string]map[string]string {
	m := make(map[string]map[string]string)
	graphs.Lock()
	defer graphs.Unlock()
	for graph := range graphs.m {
		m[graph] = getCounters(graph)
	}
	return m
}

func getCounters(graph string) map[string]string {
	m := make(map[string]string)
	for _, counter := range counters {
		v := expvar.Get(key(graph, counter))
		if v != nil {
			m[counter] = v.String()
		}
	}
	return m
}

// ResetFunc returns new Measure closure. This closure is needed to postpone metrics
// capture until instance is actually pulled.
type ResetFunc func() MeasureFunc

// MeasureFunc captures metrics when frames are produced. It doesn't
// allocate and can be called on the real-time path.
type MeasureFunc func(frames, updates int64)

// Meter creates new meter closure to capture graph instance counters.
func Meter(graph string, sampleRate float32) ResetFunc {
	metric := graphs.get(graph)
	metric.instances.Add(1)
	return func() MeasureFunc {
		calledAt := time.Now()
		var (
			frames         int64
			framesDuration time.Duration
		)
		return func(f, u int64) {
			metric.latency.set(time.Since(calledAt))
			metric.frames.Add(f)
			metric.updates.Add(u)
			// recalculate duration only when number of frames has changed
			if frames != f {
				frames = f
				framesDuration = signal.DurationOf(sampleRate, f)
			}
			metric.duration.add(framesDuration)
			calledAt = time.Now()
		}
	}
}

// Rendered counts an offline render of the graph.
func Rendered(graph string) {
	graphs.get(graph).renders.Add(1)
}

type metrics struct {
	sync.Mutex
	m map[string]metric
}

func (m *metrics) get(graph string) metric {
	m.Lock()
	defer m.Unlock()
	if metric, ok := m.m[graph]; ok {
		// return existing metric if available
		return metric
	}
	// create new metric
	metric := newMetric(graph)
	m.m[graph] = metric
	return metric
}

type metric struct {
	instances *expvar.Int
	renders   *expvar.Int
	frames    *expvar.Int
	updates   *expvar.Int
	latency   *duration
	duration  *duration
}

func newMetric(graph string) metric {
	m := metric{
		instances: expvar.NewInt(key(graph, InstanceCounter)),
		renders:   expvar.NewInt(key(graph, RenderCounter)),
		frames:    expvar.NewInt(key(graph, FrameCounter)),
		updates:   expvar.NewInt(key(graph, UpdateCounter)),
		latency:   &duration{},
		duration:  &duration{},
	}
	expvar.Publish(key(graph, LatencyCounter), m.latency)
	expvar.Publish(key(graph, DurationCounter), m.duration)
	return m
}

func key(graph, counter string) string {
	return fmt.Sprintf("%s.%s.%s", graphsLabel, graph, counter)
}

// duration allows to format time.Duration metric values.
type duration struct {
	d int64
}

func (v *duration) String() string {
	return fmt.Sprintf("%q", time.Duration(atomic.LoadInt64(&v.d)))
}

func (v *duration) add(delta time.Duration) {
	atomic.AddInt64(&v.d, int64(delta))
}

func (v *duration) set(value time.Duration) {
	atomic.StoreInt64(&v.d, int64(value))
}
