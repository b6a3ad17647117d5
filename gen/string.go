package gen

import (
	"strings"

	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// String generates strings of printable ASCII by default. Length scales
// with the status size metric; a RuneRange configuration changes the code
// point interval.
type String struct {
	min, max rune
}

// NewString returns a string generator.
func NewString() *String {
	return &String{min: defaultMinRune, max: defaultMaxRune}
}

// Configure accepts a RuneRange setting.
func (g *String) Configure(configs ...generator.Config) error {
	min, max, err := runeRange("string", g.min, g.max, configs)
	if err != nil {
		return err
	}
	g.min, g.max = min, max
	return nil
}

// Generate implements generator.Generator.
func (g *String) Generate(src *random.Source, status generator.Status) (any, error) {
	n, err := src.IntBetween(0, status.Size())
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, err := src.RuneBetween(g.min, g.max)
		if err != nil {
			return nil, err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
