package dspgraph

import (
	"fmt"
	"sort"

	"github.com/pipelined/dspgraph/log"
)

// Registry maps graph identities to descriptors. Registry must be
// populated from a single goroutine, concurrent lookups are safe once
// setup is done.
type Registry struct {
	graphs     map[Identity]*Descriptor
	sampleRate float32
	capacity   int
	log        log.Logger
}

// NewRegistry creates a new registry and applies provided options.
func NewRegistry(options ...Option) *Registry {
	r := &Registry{
		graphs: make(map[Identity]*Descriptor),
	}
	for _, option := range append(defaultOptions(), options...) {
		option(r)
	}
	return r
}

// Register inserts the descriptor for the identity. Existing descriptor
// is replaced. Graphs with zero identity are ignored.
func (r *Registry) Register(id Identity, build BuildFunc, sampleRate float32, mode OutputMode) {
	r.register(id, id.String(), build, sampleRate, mode)
}

// Add registers the graph with registry sample rate and returns its
// identity.
func (r *Registry) Add(g Graph, mode OutputMode) Identity {
	r.register(g.ID(), g.Name(), g.Build, r.sampleRate, mode)
	return g.ID()
}

func (r *Registry) register(id Identity, name string, build BuildFunc, sampleRate float32, mode OutputMode) {
	if !id.IsValid() {
		r.log.Info(fmt.Sprintf("ignoring graph %s: zero identity", name))
		return
	}
	if _, ok := r.graphs[id]; ok {
		r.log.Debug(fmt.Sprintf("replacing graph %s (%s)", name, id))
	}
	r.graphs[id] = &Descriptor{
		id:         id,
		name:       name,
		build:      build,
		sampleRate: sampleRate,
		mode:       mode,
		capacity:   r.capacity,
		log:        r.log,
	}
	r.log.Debug(fmt.Sprintf("registered graph %s (%s) %s at %gHz", name, id, mode, sampleRate))
}

// Remove deletes the graph from registry.
func (r *Registry) Remove(id Identity) {
	delete(r.graphs, id)
}

// Lookup returns the descriptor of registered graph.
func (r *Registry) Lookup(id Identity) (*Descriptor, bool) {
	d, ok := r.graphs[id]
	return d, ok
}

// LookupGraph returns the descriptor of registered graph.
func (r *Registry) LookupGraph(g Graph) (*Descriptor, bool) {
	return r.Lookup(g.ID())
}

// Len returns number of registered graphs.
func (r *Registry) Len() int {
	return len(r.graphs)
}

// Each calls fn for every registered graph, ordered by name.
func (r *Registry) Each(fn func(*Descriptor)) {
	descriptors := make([]*Descriptor, 0, len(r.graphs))
	for _, d := range r.graphs {
		descriptors = append(descriptors, d)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		if descriptors[i].name != descriptors[j].name {
			return descriptors[i].name < descriptors[j].name
		}
		return descriptors[i].id.String() < descriptors[j].id.String()
	})
	for _, d := range descriptors {
		fn(d)
	}
}

// Render renders registered static graph.
func (r *Registry) Render(id Identity) ([]byte, error) {
	d, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("render %s: %w", id, ErrUnknownGraph)
	}
	return Render(d)
}

// Stream instantiates a stream of registered graph.
func (r *Registry) Stream(id Identity) (*Stream, error) {
	d, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("stream %s: %w", id, ErrUnknownGraph)
	}
	return NewStream(d), nil
}
