package generator

// Status carries the bounds for one generation call tree: a size metric
// that scales the magnitude and length of generated values, and a
// recursion-depth budget that guarantees termination of self-referential
// generators.
//
// The driver creates one Status per top-level Generate call and passes it
// by value into every nested call, unchanged or descended one level. A
// Status is never retained beyond its call tree.
type Status struct {
	size     int
	depth    int
	maxDepth int
}

// NewStatus returns a Status with the given size metric and maximum
// recursion depth, starting at depth zero. A negative size is clamped to
// zero so generators can treat the size metric as a length or magnitude
// bound without re-validating it.
func NewStatus(size, maxDepth int) Status {
	if size < 0 {
		size = 0
	}
	return Status{size: size, maxDepth: maxDepth}
}

// Size returns the size metric for the current call tree.
func (s Status) Size() int {
	return s.size
}

// Depth returns the current recursion depth.
func (s Status) Depth() int {
	return s.depth
}

// MaxDepth returns the configured recursion limit.
func (s Status) MaxDepth() int {
	return s.maxDepth
}

// Descend returns a copy one level deeper. Composite generators pass the
// descended copy into component calls that may re-enter themselves.
func (s Status) Descend() Status {
	s.depth++
	return s
}

// Exhausted reports whether the depth budget is spent. A recursive
// generator must fall back to a terminal construction once Exhausted
// returns true; this is the sole cycle-breaking mechanism the engine
// provides.
func (s Status) Exhausted() bool {
	return s.depth >= s.maxDepth
}
