package gen

import (
	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// Int generates int64 values. Unconfigured, the magnitude is bounded by
// the status size metric; an IntRange configuration pins the interval
// instead.
type Int struct {
	min, max int64
	ranged   bool
}

// NewInt returns an integer generator.
func NewInt() *Int {
	return &Int{}
}

// Configure accepts an IntRange setting. Reapplying an identical range is
// a no-op.
func (g *Int) Configure(configs ...generator.Config) error {
	for _, cfg := range configs {
		switch c := cfg.(type) {
		case generator.IntRange:
			if c.Min > c.Max {
				return generator.NewConfigError("int", "range min %d exceeds max %d", c.Min, c.Max)
			}
			g.min, g.max = c.Min, c.Max
			g.ranged = true
		default:
			return generator.UnsupportedConfigError("int", cfg)
		}
	}
	return nil
}

// Generate implements generator.Generator.
func (g *Int) Generate(src *random.Source, status generator.Status) (any, error) {
	if g.ranged {
		return src.Int64Between(g.min, g.max)
	}
	size := int64(status.Size())
	return src.Int64Between(-size, size)
}
