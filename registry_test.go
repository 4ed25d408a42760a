package dspgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/internal/mock"
	"github.com/pipelined/dspgraph/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRegistry(options ...dspgraph.Option) *dspgraph.Registry {
	return dspgraph.NewRegistry(append([]dspgraph.Option{dspgraph.WithLogger(log.Silent())}, options...)...)
}

func TestRegistry(t *testing.T) {
	var builds mock.Builds
	r := newRegistry()
	id := dspgraph.IdentityOf("registry.ramp")

	_, ok := r.Lookup(id)
	assert.False(t, ok)

	r.Register(id, builds.Ramp(1), 8000, dspgraph.Dynamic())
	d, ok := r.Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, id, d.ID())
	assert.Equal(t, id.String(), d.Name())
	assert.Equal(t, float32(8000), d.SampleRate())
	assert.False(t, d.Mode().IsStatic())
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 0, builds.Count(), "registration must not build graphs")

	// replace
	r.Register(id, builds.Ramp(2), 16000, dspgraph.Static(1))
	d, ok = r.Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, float32(16000), d.SampleRate())
	assert.True(t, d.Mode().IsStatic())
	assert.Equal(t, 1, r.Len())

	r.Remove(id)
	_, ok = r.Lookup(id)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
	// removing twice is fine
	r.Remove(id)
}

func TestRegistryAdd(t *testing.T) {
	var builds mock.Builds
	r := newRegistry(dspgraph.WithSampleRate(22050))
	g := dspgraph.Named("registry.add", builds.Ramp(1))

	id := r.Add(g, dspgraph.Static(0.1))
	assert.Equal(t, g.ID(), id)

	d, ok := r.LookupGraph(g)
	assert.True(t, ok)
	assert.Equal(t, "registry.add", d.Name())
	assert.Equal(t, float32(22050), d.SampleRate())
}

func TestRegistryDefaults(t *testing.T) {
	r := newRegistry()
	g := dspgraph.Named("registry.defaults", sine440)
	r.Add(g, dspgraph.Dynamic())
	d, _ := r.LookupGraph(g)
	assert.Equal(t, dspgraph.DefaultSampleRate, d.SampleRate())
}

func TestRegistryEach(t *testing.T) {
	r := newRegistry()
	for _, name := range []string{"c", "a", "b"} {
		r.Add(dspgraph.Named(name, sine440), dspgraph.Dynamic())
	}
	var names []string
	r.Each(func(d *dspgraph.Descriptor) {
		names = append(names, d.Name())
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestRegistryUnknownGraph(t *testing.T) {
	r := newRegistry()
	id := dspgraph.NewIdentity()

	_, err := r.Render(id)
	assert.True(t, errors.Is(err, dspgraph.ErrUnknownGraph))
	assert.Contains(t, err.Error(), id.String())

	_, err = r.Stream(id)
	assert.True(t, errors.Is(err, dspgraph.ErrUnknownGraph))
}

func TestRegistryZeroIdentity(t *testing.T) {
	var builds mock.Builds
	r := newRegistry()
	r.Register(dspgraph.Identity{}, builds.Ramp(1), 8000, dspgraph.Dynamic())
	r.Add(dspgraph.WithID(dspgraph.Identity{}, builds.Ramp(1)), dspgraph.Dynamic())

	assert.Equal(t, 0, r.Len())
	_, ok := r.Lookup(dspgraph.Identity{})
	assert.False(t, ok)
}

func TestRegistryNilLogger(t *testing.T) {
	var builds mock.Builds
	r := dspgraph.NewRegistry(dspgraph.WithLogger(nil))
	id := dspgraph.IdentityOf("registry.nil.logger")
	assert.NotPanics(t, func() {
		r.Register(id, builds.Ramp(1), 8000, dspgraph.Dynamic())
		r.Register(id, builds.Ramp(1), 8000, dspgraph.Dynamic())
	})
	assert.Equal(t, 1, r.Len())
}
