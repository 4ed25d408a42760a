/*
Package dspgraph instantiates and runs signal graphs.

Concept

A graph is described by a constructor function that builds a fresh
unit.Unit every time it is called. Constructors are registered once during
setup and keyed by identity:

    r := dspgraph.NewRegistry()
    sine := r.Add(dspgraph.Func(sineWave), dspgraph.Dynamic())

Registered graphs are available as descriptors. A descriptor is an
immutable, shared recipe: it never holds graph state, only the way to
build it, the sample rate and the output mode.

Output modes

Static graphs have a duration and are rendered offline into a wav
container in a single pass:

    d, _ := r.Lookup(beep)
    data, err := dspgraph.Render(d)

Dynamic graphs are infinite and are pulled frame by frame from the audio
callback:

    s := d.Stream()
    defer s.Close()
    frame := s.Next()

Live parameters

Every stream has its own parameter channel. Producer handles returned by
Control can be used from any goroutine, updates are applied in order right
before the next frame is produced:

    control := s.Control()
    go control.Set(pitch, 880)

Pulling frames never blocks and never fails.

Identity

Identities are 128-bit values. IdentityOf derives identity from a stable
name, FuncIdentity derives it from the constructor's symbol name. The
latter is a convenience: closures created by the same function literal
share the symbol and therefore the identity. Use Named or WithID to assign
identity explicitly when closures capture different state.
*/
package dspgraph
