package gen

import (
	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// Tree is a recursive composite value: a node payload plus zero or more
// child trees.
type Tree struct {
	Value    any
	Children []*Tree
}

// Height returns the number of levels in the tree. A leaf has height 1.
func (t *Tree) Height() int {
	max := 0
	for _, child := range t.Children {
		if h := child.Height(); h > max {
			max = h
		}
	}
	return max + 1
}

// TreeGenerator generates Tree values. Node payloads come from its single
// bound component; children come from the generator itself, one depth
// level down per generation, with a leaf fallback once the status budget
// is exhausted. That fallback is the generator's entire termination story.
type TreeGenerator struct {
	generator.Components
}

// NewTree returns an unbound tree generator. Bind exactly one payload
// component before the first Generate call.
func NewTree() *TreeGenerator {
	return &TreeGenerator{}
}

// NeededComponents implements generator.Componentized.
func (g *TreeGenerator) NeededComponents() int {
	return 1
}

// Generate implements generator.Generator.
func (g *TreeGenerator) Generate(src *random.Source, status generator.Status) (any, error) {
	value, err := g.Component(0).Generate(src, status)
	if err != nil {
		return nil, err
	}
	if status.Exhausted() {
		return &Tree{Value: value}, nil
	}
	n, err := src.IntBetween(0, 2)
	if err != nil {
		return nil, err
	}
	children := make([]*Tree, n)
	child := status.Descend()
	for i := range children {
		sub, err := g.Generate(src, child)
		if err != nil {
			return nil, err
		}
		children[i] = sub.(*Tree)
	}
	return &Tree{Value: value, Children: children}, nil
}
