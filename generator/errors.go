package generator

import "fmt"

// ArityError indicates that a componentized generator was handed a number
// of sub-generators different from its declared arity. This is a wiring
// defect in the resolver, not a data-dependent condition: the component
// list is neither truncated nor padded.
type ArityError struct {
	Want int
	Got  int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("generator: bound %d components where %d are needed", e.Got, e.Want)
}

// ConfigError indicates that a generator was handed a configuration it
// does not support, or one with invalid contents.
type ConfigError struct {
	// Generator names the rejecting generator.
	Generator string

	// Detail describes the rejected setting.
	Detail string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("generator: %s: %s", e.Generator, e.Detail)
}

// NewConfigError returns a ConfigError for the named generator.
func NewConfigError(name, format string, args ...any) *ConfigError {
	return &ConfigError{Generator: name, Detail: fmt.Sprintf(format, args...)}
}

// UnsupportedConfigError reports a Config variant the generator has no use
// for.
func UnsupportedConfigError(name string, cfg Config) *ConfigError {
	return NewConfigError(name, "unsupported configuration %T", cfg)
}
