package dspgraph

import "fmt"

// OutputMode defines how the graph is played.
type OutputMode struct {
	static   bool
	duration float32
}

// Static mode is finite. Static graphs are rendered offline into a buffer
// of provided duration in seconds.
func Static(duration float32) OutputMode {
	return OutputMode{static: true, duration: duration}
}

// Dynamic mode is infinite. Dynamic graphs are pulled frame by frame.
func Dynamic() OutputMode {
	return OutputMode{}
}

// IsStatic returns true for static mode.
func (m OutputMode) IsStatic() bool {
	return m.static
}

// Duration returns duration in seconds of a static mode.
func (m OutputMode) Duration() (float32, bool) {
	return m.duration, m.static
}

func (m OutputMode) String() string {
	if m.static {
		return fmt.Sprintf("static(%gs)", m.duration)
	}
	return "dynamic"
}
