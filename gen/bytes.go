package gen

import (
	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// Bytes generates byte slices whose length scales with the status size
// metric.
type Bytes struct{}

// NewBytes returns a byte-slice generator.
func NewBytes() *Bytes {
	return &Bytes{}
}

// Generate implements generator.Generator.
func (g *Bytes) Generate(src *random.Source, status generator.Status) (any, error) {
	n, err := src.IntBetween(0, status.Size())
	if err != nil {
		return nil, err
	}
	return src.Bytes(n), nil
}
