package quickcheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qz267/junit-quickcheck/gen"
	"github.com/qz267/junit-quickcheck/generator"
)

func TestSampleReproducible(t *testing.T) {
	a, err := Sample("int", 42)
	require.NoError(t, err)
	b, err := Sample("int", 42)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Sample("int", 43)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestSampleNCountAndSequence(t *testing.T) {
	values, err := SampleN("string", 7, 10)
	require.NoError(t, err)
	require.Len(t, values, 10)

	// The n'th value depends on the draws before it, so the whole
	// sequence replays from the seed.
	again, err := SampleN("string", 7, 10)
	require.NoError(t, err)
	require.Equal(t, values, again)
}

func TestSampleUnknownGenerator(t *testing.T) {
	_, err := Sample("no-such-generator", 1)
	require.Error(t, err)
}

func TestSampleWithConfigs(t *testing.T) {
	values, err := SampleN("int", 5, 200, WithConfigs(generator.IntRange{Min: 1, Max: 6}))
	require.NoError(t, err)
	for _, v := range values {
		n := v.(int64)
		require.True(t, n >= 1 && n <= 6)
	}
}

func TestSampleConfigOnUnconfigurableGenerator(t *testing.T) {
	_, err := Sample("bool", 1, WithConfigs(generator.IntRange{Min: 0, Max: 1}))
	require.Error(t, err)
	require.IsType(t, &generator.ConfigError{}, err)
}

func TestSampleWithSizeAndDepth(t *testing.T) {
	values, err := SampleN("tree", 3, 50, WithSize(10), WithMaxDepth(2))
	require.NoError(t, err)
	for _, v := range values {
		require.LessOrEqual(t, v.(*gen.Tree).Height(), 3)
	}
}

func TestSampleWithCustomRegistry(t *testing.T) {
	registry := generator.NewRegistry()
	registry.Register("die", func() generator.Generator {
		g := gen.NewInt()
		if err := g.Configure(generator.IntRange{Min: 1, Max: 6}); err != nil {
			t.Fatal(err)
		}
		return g
	})

	v, err := Sample("die", 9, WithRegistry(registry))
	require.NoError(t, err)
	n := v.(int64)
	require.True(t, n >= 1 && n <= 6)

	// Registry option does not leak into the default.
	_, err = Sample("die", 9)
	require.Error(t, err)
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	names := DefaultRegistry().Names()
	require.Contains(t, names, "int")
	require.Contains(t, names, "pair")
	require.Contains(t, names, "tree")
}
