package dspgraph

import "github.com/pipelined/dspgraph/unit"

type (
	// BuildFunc builds a new graph instance.
	BuildFunc func() unit.Unit

	// Graph is a named graph constructor.
	Graph interface {
		ID() Identity
		Name() string
		Build() unit.Unit
	}

	graph struct {
		id    Identity
		name  string
		build BuildFunc
	}
)

// Func returns a graph which identity and name are derived from the
// symbol name of the build function.
func Func(build BuildFunc) Graph {
	name := funcName(build)
	return graph{
		id:    IdentityOf(name),
		name:  name,
		build: build,
	}
}

// Named returns a graph which identity is derived from the name.
func Named(name string, build BuildFunc) Graph {
	return graph{
		id:    IdentityOf(name),
		name:  name,
		build: build,
	}
}

// WithID returns a graph with explicit identity.
func WithID(id Identity, build BuildFunc) Graph {
	return graph{
		id:    id,
		name:  id.String(),
		build: build,
	}
}

func (g graph) ID() Identity {
	return g.id
}

func (g graph) Name() string {
	return g.name
}

func (g graph) Build() unit.Unit {
	return g.build()
}
