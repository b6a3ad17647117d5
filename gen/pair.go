package gen

import (
	"reflect"

	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// Pair is a two-slot composite value. First and Second come from the
// outputs of the pair generator's two bound components, in that order.
type Pair struct {
	First  any
	Second any
	marked bool
}

// Marked reports whether the pair carries the distinguishing marker set by
// a Mark configuration on the generator that built it.
func (p Pair) Marked() bool {
	return p.marked
}

// Equal compares two pairs slot by slot. The marker participates: a marked
// pair never equals an unmarked one, regardless of slot contents.
func (p Pair) Equal(other Pair) bool {
	return p.marked == other.marked &&
		reflect.DeepEqual(p.First, other.First) &&
		reflect.DeepEqual(p.Second, other.Second)
}

// PairGenerator assembles a Pair from two bound component generators.
type PairGenerator struct {
	generator.Components

	marked bool
}

// NewPair returns an unbound pair generator. Bind exactly two components
// before the first Generate call.
func NewPair() *PairGenerator {
	return &PairGenerator{}
}

// NeededComponents implements generator.Componentized.
func (g *PairGenerator) NeededComponents() int {
	return 2
}

// Configure accepts a Mark setting, which stamps every generated pair with
// the distinguishing marker.
func (g *PairGenerator) Configure(configs ...generator.Config) error {
	for _, cfg := range configs {
		switch cfg.(type) {
		case generator.Mark:
			g.marked = true
		default:
			return generator.UnsupportedConfigError("pair", cfg)
		}
	}
	return nil
}

// Generate implements generator.Generator. Both components draw from the
// same source and status, first slot first, so replaying the seed through
// the components independently yields the same two values.
func (g *PairGenerator) Generate(src *random.Source, status generator.Status) (any, error) {
	first, err := g.Component(0).Generate(src, status)
	if err != nil {
		return nil, err
	}
	second, err := g.Component(1).Generate(src, status)
	if err != nil {
		return nil, err
	}
	return Pair{First: first, Second: second, marked: g.marked}, nil
}
