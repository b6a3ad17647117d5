// Package generator defines the protocol by which random test values are
// produced and composed.
//
// A Generator knows how to produce one value from a random.Source and a
// Status. Generators for composite types additionally implement
// Componentized: they declare how many sub-generators they need, are handed
// exactly that many via Bind, and assemble their value from the
// sub-generators' outputs. Generators with tunable semantics implement
// Configurable and accept settings from the closed Config set before first
// use.
//
// Binding and configuration are one-way transitions in a generator's
// lifetime: there is no un-binding and no un-configuring.
package generator

import (
	"github.com/qz267/junit-quickcheck/random"
)

// Generator produces one random value per Generate call. Implementations
// may hold configuration state set prior to use, but must not retain the
// source or status across calls.
type Generator interface {
	Generate(src *random.Source, status Status) (any, error)
}

// Componentized is a Generator for a composite type, assembled from a
// fixed number of sub-generators, one per structural slot. The order of
// the bound components is semantically meaningful: component 0 fills the
// composite's first slot, component 1 the second, and so on.
type Componentized interface {
	Generator

	// NeededComponents reports the generator's arity. It is a pure
	// function of the generator's type and is queried once, at bind time.
	NeededComponents() int

	// SetComponents installs the bound sub-generators. Callers go through
	// Bind, which enforces the arity contract; calling SetComponents
	// directly bypasses that check.
	SetComponents(components []Generator)
}

// Bind installs the given sub-generators on g after checking that their
// count matches the declared arity. A mismatch is a wiring defect in the
// caller and is reported as an *ArityError before any binding occurs.
func Bind(g Componentized, components ...Generator) error {
	if want, got := g.NeededComponents(), len(components); want != got {
		return &ArityError{Want: want, Got: got}
	}
	g.SetComponents(components)
	return nil
}

// Components is an embeddable holder for a componentized generator's bound
// sub-generators.
type Components struct {
	components []Generator
}

// SetComponents implements the Componentized binding hook.
func (c *Components) SetComponents(components []Generator) {
	c.components = components
}

// Component returns the i'th bound sub-generator. Indexing a slot that was
// never bound panics; a generator invoked without going through Bind is a
// wiring defect, not a recoverable condition.
func (c *Components) Component(i int) Generator {
	return c.components[i]
}

// ComponentCount reports how many sub-generators are currently bound.
func (c *Components) ComponentCount() int {
	return len(c.components)
}
