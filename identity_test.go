package dspgraph_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pipelined/dspgraph"
	"github.com/pipelined/dspgraph/unit"
)

func sine440() unit.Unit {
	return unit.Split(unit.SineHz(440))
}

func sine880() unit.Unit {
	return unit.Split(unit.SineHz(880))
}

func TestIdentity(t *testing.T) {
	t.Run("stable", func(t *testing.T) {
		assert.Equal(t, dspgraph.IdentityOf("sine"), dspgraph.IdentityOf("sine"))
		assert.NotEqual(t, dspgraph.IdentityOf("sine"), dspgraph.IdentityOf("saw"))
	})
	t.Run("name based", func(t *testing.T) {
		id := dspgraph.IdentityOf("sine")
		u := uuid.UUID(id)
		assert.Equal(t, uuid.Version(5), u.Version())
		assert.Equal(t, uuid.NewSHA1(uuid.NameSpaceOID, []byte("sine")).String(), id.String())
	})
	t.Run("random", func(t *testing.T) {
		a, b := dspgraph.NewIdentity(), dspgraph.NewIdentity()
		assert.True(t, a.IsValid())
		assert.NotEqual(t, a, b)
		assert.False(t, dspgraph.Identity{}.IsValid())
	})
	t.Run("func", func(t *testing.T) {
		assert.Equal(t, dspgraph.FuncIdentity(sine440), dspgraph.FuncIdentity(sine440))
		assert.NotEqual(t, dspgraph.FuncIdentity(sine440), dspgraph.FuncIdentity(sine880))
		assert.Equal(t, dspgraph.FuncIdentity(sine440), dspgraph.Func(sine440).ID())
		assert.Contains(t, dspgraph.Func(sine440).Name(), "sine440")
	})
	t.Run("not a func", func(t *testing.T) {
		assert.Panics(t, func() { dspgraph.FuncIdentity(42) })
		var fn func() unit.Unit
		assert.Panics(t, func() { dspgraph.FuncIdentity(fn) })
	})
}

func TestGraph(t *testing.T) {
	named := dspgraph.Named("sine", sine440)
	assert.Equal(t, "sine", named.Name())
	assert.Equal(t, dspgraph.IdentityOf("sine"), named.ID())

	id := dspgraph.NewIdentity()
	explicit := dspgraph.WithID(id, sine440)
	assert.Equal(t, id, explicit.ID())
	assert.Equal(t, id.String(), explicit.Name())
	assert.NotNil(t, explicit.Build())
}

func TestOutputMode(t *testing.T) {
	static := dspgraph.Static(0.5)
	d, ok := static.Duration()
	assert.True(t, ok)
	assert.True(t, static.IsStatic())
	assert.Equal(t, float32(0.5), d)
	assert.Equal(t, "static(0.5s)", static.String())

	dynamic := dspgraph.Dynamic()
	_, ok = dynamic.Duration()
	assert.False(t, ok)
	assert.False(t, dynamic.IsStatic())
	assert.Equal(t, "dynamic", dynamic.String())
}
