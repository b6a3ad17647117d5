// Package gen provides the built-in generator family: scalar generators
// for booleans, integers, floats, runes, bytes, strings and UUIDs, and
// composite generators (pair, slice, tree) built on the componentized
// protocol in the generator package.
package gen

import (
	"github.com/qz267/junit-quickcheck/generator"
)

// Builtins returns factories for the built-in generators, keyed by the
// names they are conventionally registered under. Composite factories come
// pre-bound to int components; callers wanting different slot types
// construct and Bind their own instances.
func Builtins() map[string]generator.Factory {
	return map[string]generator.Factory{
		"bool":   func() generator.Generator { return NewBool() },
		"int":    func() generator.Generator { return NewInt() },
		"float":  func() generator.Generator { return NewFloat() },
		"rune":   func() generator.Generator { return NewRune() },
		"bytes":  func() generator.Generator { return NewBytes() },
		"string": func() generator.Generator { return NewString() },
		"uuid":   func() generator.Generator { return NewUUID() },
		"pair":   func() generator.Generator { return bound(NewPair(), NewInt(), NewInt()) },
		"slice":  func() generator.Generator { return bound(NewSlice(), NewInt()) },
		"tree":   func() generator.Generator { return bound(NewTree(), NewInt()) },
	}
}

// bound is a construction-time Bind for factories whose arity is known to
// match; a failure here is a defect in this package.
func bound(g generator.Componentized, components ...generator.Generator) generator.Generator {
	if err := generator.Bind(g, components...); err != nil {
		panic(err)
	}
	return g
}
