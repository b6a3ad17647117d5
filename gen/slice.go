package gen

import (
	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// SliceGenerator generates []any values whose elements come from its
// single bound component. Length scales with the status size metric and
// shrinks with depth, so slices of slices stay bounded.
type SliceGenerator struct {
	generator.Components
}

// NewSlice returns an unbound slice generator. Bind exactly one element
// component before the first Generate call.
func NewSlice() *SliceGenerator {
	return &SliceGenerator{}
}

// NeededComponents implements generator.Componentized.
func (g *SliceGenerator) NeededComponents() int {
	return 1
}

// Generate implements generator.Generator. Once the depth budget is spent
// the slice degenerates to empty, which is what terminates element
// generators that loop back to this one.
func (g *SliceGenerator) Generate(src *random.Source, status generator.Status) (any, error) {
	if status.Exhausted() {
		return []any{}, nil
	}
	limit := status.Size() / (status.Depth() + 1)
	n, err := src.IntBetween(0, limit)
	if err != nil {
		return nil, err
	}
	out := make([]any, n)
	child := status.Descend()
	for i := range out {
		v, err := g.Component(0).Generate(src, child)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
