// Package random provides the source of randomness that generators draw
// from. A Source wraps a reseedable bit generator and exposes primitive
// draws (booleans, bytes, unit floats, gaussians, raw integers) alongside
// bounded sampling over closed intervals.
//
// Bounded integral sampling is unbiased: values are drawn by masked
// rejection over the span's bit length, never by modulo reduction. Bounded
// floating sampling is a linear interpolation of a unit draw, which is
// "uniform enough" for test data but not bit-level uniform over
// representable values; that tradeoff is deliberate.
//
// A Source is confined to one generation run. It is not safe for
// concurrent use; parallel runs each get their own independently seeded
// instance.
package random

import (
	"math/big"
	"math/bits"
	"math/rand"
	"unicode/utf8"
)

// Source is a source of randomness fed to generators so they can produce
// random test values. One seed yields one reproducible output sequence:
// two Sources seeded identically and driven by the same call sequence
// produce identical values element for element.
type Source struct {
	src rand.Source64
	rnd *rand.Rand
}

// New returns a Source seeded with the given seed.
func New(seed int64) *Source {
	return From(rand.NewSource(seed).(rand.Source64))
}

// From returns a Source that draws bits from the given underlying
// generator. The caller keeps ownership of src; this is how tests
// substitute a counting or scripted bit source.
func From(src rand.Source64) *Source {
	return &Source{src: src, rnd: rand.New(src)}
}

// Seed deterministically resets the underlying bit generator. All output
// after Seed is a pure function of the given seed.
//
// Seeding goes through rand.Rand rather than the bit source directly:
// Rand caches the unconsumed remainder of a partially read word, and that
// cache has to be discarded along with the old seed's state.
func (s *Source) Seed(seed int64) {
	s.rnd.Seed(seed)
}

// Bool returns a uniformly distributed boolean.
func (s *Source) Bool() bool {
	return s.Uint64()&1 == 1
}

// Bytes returns n uniformly random bytes.
func (s *Source) Bytes(n int) []byte {
	b := make([]byte, n)
	s.rnd.Read(b)
	return b
}

// Float32 returns a uniform value in [0.0, 1.0).
func (s *Source) Float32() float32 {
	return s.rnd.Float32()
}

// Float64 returns a uniform value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rnd.Float64()
}

// Gaussian returns a standard-normal-distributed value.
func (s *Source) Gaussian() float64 {
	return s.rnd.NormFloat64()
}

// Int32 returns a uniform value over the full int32 range.
func (s *Source) Int32() int32 {
	return int32(s.Uint64())
}

// Int64 returns a uniform value over the full int64 range.
func (s *Source) Int64() int64 {
	return int64(s.Uint64())
}

// Uint64 returns a uniform value over the full uint64 range.
func (s *Source) Uint64() uint64 {
	return s.rnd.Uint64()
}

// Int8Between returns a uniform value in [min, max].
func (s *Source) Int8Between(min, max int8) (int8, error) {
	v, err := s.int64Between("Int8Between", int64(min), int64(max))
	return int8(v), err
}

// Int16Between returns a uniform value in [min, max].
func (s *Source) Int16Between(min, max int16) (int16, error) {
	v, err := s.int64Between("Int16Between", int64(min), int64(max))
	return int16(v), err
}

// Int32Between returns a uniform value in [min, max].
func (s *Source) Int32Between(min, max int32) (int32, error) {
	v, err := s.int64Between("Int32Between", int64(min), int64(max))
	return int32(v), err
}

// IntBetween returns a uniform value in [min, max].
func (s *Source) IntBetween(min, max int) (int, error) {
	v, err := s.int64Between("IntBetween", int64(min), int64(max))
	return int(v), err
}

// Int64Between returns a uniform value in [min, max].
func (s *Source) Int64Between(min, max int64) (int64, error) {
	return s.int64Between("Int64Between", min, max)
}

// RuneBetween returns a uniform value in [min, max]. Both bounds must be
// valid runes, meaning legal Unicode code points outside the surrogate
// range.
func (s *Source) RuneBetween(min, max rune) (rune, error) {
	const op = "RuneBetween"
	if !utf8.ValidRune(min) {
		return 0, invalidRuneError(op, min)
	}
	if !utf8.ValidRune(max) {
		return 0, invalidRuneError(op, max)
	}
	v, err := s.int64Between(op, int64(min), int64(max))
	return rune(v), err
}

// int64Between implements bounded integral sampling for every integral
// width; narrower widths narrow the result, which is safe because their
// argument types already constrain min and max.
//
// The min == max short circuit is a contract, not an optimization: it must
// return without consuming the underlying bit generator.
func (s *Source) int64Between(op string, min, max int64) (int64, error) {
	if min > max {
		return 0, invertedRangeError(op, min, max)
	}
	if min == max {
		return min, nil
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// max - min + 1 wrapped: the span is the entire 64-bit range and
		// every raw draw is already uniform over it.
		return s.Int64(), nil
	}
	return min + int64(s.uint64n(span)), nil
}

// uint64n returns a uniform value in [0, n) for n > 0, by masking raw
// draws down to the span's bit length and rejecting those >= n. Unlike
// modulo reduction this introduces no bias; each accepted draw is uniform.
func (s *Source) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 {
		return s.Uint64() & (n - 1)
	}
	mask := ^uint64(0) >> uint(bits.LeadingZeros64(n-1))
	for {
		if v := s.Uint64() & mask; v < n {
			return v
		}
	}
}

// Float32Between returns a value in [min, max], interpolated linearly from
// a unit draw. For ranges spanning many orders of magnitude the result is
// not uniform over representable floats; see the package comment.
func (s *Source) Float32Between(min, max float32) (float32, error) {
	if min > max {
		return 0, invertedRangeError("Float32Between", min, max)
	}
	if min == max {
		return min, nil
	}
	return min + (max-min)*s.Float32(), nil
}

// Float64Between returns a value in [min, max], interpolated linearly from
// a unit draw. For ranges spanning many orders of magnitude the result is
// not uniform over representable floats; see the package comment.
func (s *Source) Float64Between(min, max float64) (float64, error) {
	if min > max {
		return 0, invertedRangeError("Float64Between", min, max)
	}
	if min == max {
		return min, nil
	}
	return min + (max-min)*s.Float64(), nil
}

// BigInt returns a uniform non-negative value representable in the given
// number of bits. A bit count of zero or less yields zero.
func (s *Source) BigInt(bitLen int) *big.Int {
	if bitLen <= 0 {
		return new(big.Int)
	}
	nBytes := (bitLen + 7) / 8
	b := s.Bytes(nBytes)
	b[0] &= byte(0xff >> uint(8*nBytes-bitLen))
	return new(big.Int).SetBytes(b)
}

// BigIntBetween returns a uniform value in [min, max] using rejection
// sampling over the span's bit length. This is the arbitrary-precision
// fallback for spans wider than any native integer; the fixed-width
// Between methods never need it.
func (s *Source) BigIntBetween(min, max *big.Int) (*big.Int, error) {
	const op = "BigIntBetween"
	cmp := min.Cmp(max)
	if cmp > 0 {
		return nil, invertedRangeError(op, min, max)
	}
	if cmp == 0 {
		return new(big.Int).Set(min), nil
	}
	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))
	bitLen := span.BitLen()
	for {
		v := s.BigInt(bitLen)
		if v.Cmp(span) < 0 {
			return v.Add(v, min), nil
		}
	}
}
