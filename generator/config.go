package generator

// Config is a setting applied to a generator before its first Generate
// call. The set of variants is closed: every recognized setting is a
// concrete type in this package, so configuration is checked at compile
// time rather than dispatched dynamically.
//
// Applying a configuration is idempotent: re-applying identical settings
// must not change subsequent Generate behavior. Generators reject variants
// they do not understand with a *ConfigError.
type Config interface {
	config()
}

// Mark requests that a composite value carry a distinguishing marker. The
// marker participates in the composite's equality semantics: marked and
// unmarked values of the same shape never compare equal.
type Mark struct{}

func (Mark) config() {}

// IntRange constrains an integral generator to the closed interval
// [Min, Max].
type IntRange struct {
	Min, Max int64
}

func (IntRange) config() {}

// FloatRange constrains a floating-point generator to the closed interval
// [Min, Max].
type FloatRange struct {
	Min, Max float64
}

func (FloatRange) config() {}

// RuneRange constrains a rune or string generator to code points in the
// closed interval [Min, Max].
type RuneRange struct {
	Min, Max rune
}

func (RuneRange) config() {}

// Configurable is implemented by generators whose semantics can be tuned
// before use. The resolver applies settings exactly once, before the first
// Generate call.
type Configurable interface {
	Configure(configs ...Config) error
}
