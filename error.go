package dspgraph

import "errors"

var (
	// ErrUnknownGraph is returned when graph is not registered.
	ErrUnknownGraph = errors.New("unknown graph")

	// ErrModeMismatch is returned when dynamic graph is rendered. Dynamic
	// graphs have no duration, only static graphs can be rendered.
	ErrModeMismatch = errors.New("mode mismatch: only static graphs can be rendered")

	// ErrInvalidDuration is returned when static graph has infinite
	// duration.
	ErrInvalidDuration = errors.New("duration is not finite")
)
