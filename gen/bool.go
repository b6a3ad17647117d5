package gen

import (
	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// Bool generates uniformly distributed booleans.
type Bool struct{}

// NewBool returns a boolean generator.
func NewBool() *Bool {
	return &Bool{}
}

// Generate implements generator.Generator.
func (g *Bool) Generate(src *random.Source, status generator.Status) (any, error) {
	return src.Bool(), nil
}
