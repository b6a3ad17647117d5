package gen

import (
	"unicode/utf8"

	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// Printable ASCII, the default code point range for runes and strings.
const (
	defaultMinRune = ' '
	defaultMaxRune = '~'
)

// Rune generates single code points, printable ASCII by default. A
// RuneRange configuration widens or narrows the interval.
type Rune struct {
	min, max rune
}

// NewRune returns a rune generator.
func NewRune() *Rune {
	return &Rune{min: defaultMinRune, max: defaultMaxRune}
}

// Configure accepts a RuneRange setting. Both bounds must be valid code
// points.
func (g *Rune) Configure(configs ...generator.Config) error {
	min, max, err := runeRange("rune", g.min, g.max, configs)
	if err != nil {
		return err
	}
	g.min, g.max = min, max
	return nil
}

// Generate implements generator.Generator.
func (g *Rune) Generate(src *random.Source, status generator.Status) (any, error) {
	return src.RuneBetween(g.min, g.max)
}

// runeRange validates a RuneRange configuration list on behalf of the rune
// and string generators, starting from the generator's current bounds.
func runeRange(name string, min, max rune, configs []generator.Config) (rune, rune, error) {
	for _, cfg := range configs {
		switch c := cfg.(type) {
		case generator.RuneRange:
			if !utf8.ValidRune(c.Min) {
				return 0, 0, generator.NewConfigError(name, "range min %#U is not a valid rune", c.Min)
			}
			if !utf8.ValidRune(c.Max) {
				return 0, 0, generator.NewConfigError(name, "range max %#U is not a valid rune", c.Max)
			}
			if c.Min > c.Max {
				return 0, 0, generator.NewConfigError(name, "range min %#U exceeds max %#U", c.Min, c.Max)
			}
			min, max = c.Min, c.Max
		default:
			return 0, 0, generator.UnsupportedConfigError(name, cfg)
		}
	}
	return min, max, nil
}
