package gen

import (
	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// Float generates float64 values. Unconfigured, the magnitude is bounded
// by the status size metric; a FloatRange configuration pins the interval
// instead.
type Float struct {
	min, max float64
	ranged   bool
}

// NewFloat returns a float generator.
func NewFloat() *Float {
	return &Float{}
}

// Configure accepts a FloatRange setting.
func (g *Float) Configure(configs ...generator.Config) error {
	for _, cfg := range configs {
		switch c := cfg.(type) {
		case generator.FloatRange:
			if c.Min > c.Max {
				return generator.NewConfigError("float", "range min %v exceeds max %v", c.Min, c.Max)
			}
			g.min, g.max = c.Min, c.Max
			g.ranged = true
		default:
			return generator.UnsupportedConfigError("float", cfg)
		}
	}
	return nil
}

// Generate implements generator.Generator.
func (g *Float) Generate(src *random.Source, status generator.Status) (any, error) {
	if g.ranged {
		return src.Float64Between(g.min, g.max)
	}
	size := float64(status.Size())
	return src.Float64Between(-size, size)
}
