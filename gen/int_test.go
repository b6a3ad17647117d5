package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

func TestIntDefaultBoundedBySize(t *testing.T) {
	g := NewInt()
	src := random.New(1)
	status := generator.NewStatus(50, 4)
	for i := 0; i < 1000; i++ {
		v, err := g.Generate(src, status)
		require.NoError(t, err)
		n := v.(int64)
		require.True(t, n >= -50 && n <= 50, "value %d", n)
	}
}

func TestIntConfiguredRange(t *testing.T) {
	g := NewInt()
	require.NoError(t, g.Configure(generator.IntRange{Min: 1, Max: 6}))

	src := random.New(2)
	for i := 0; i < 1000; i++ {
		v, err := g.Generate(src, testStatus())
		require.NoError(t, err)
		n := v.(int64)
		require.True(t, n >= 1 && n <= 6)
	}
}

func TestIntConfigureIsIdempotent(t *testing.T) {
	once, twice := NewInt(), NewInt()
	require.NoError(t, once.Configure(generator.IntRange{Min: -3, Max: 3}))
	require.NoError(t, twice.Configure(generator.IntRange{Min: -3, Max: 3}))
	require.NoError(t, twice.Configure(generator.IntRange{Min: -3, Max: 3}))

	srcOnce, srcTwice := random.New(3), random.New(3)
	for i := 0; i < 100; i++ {
		a, err := once.Generate(srcOnce, testStatus())
		require.NoError(t, err)
		b, err := twice.Generate(srcTwice, testStatus())
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestIntRejectsInvertedRange(t *testing.T) {
	g := NewInt()
	err := g.Configure(generator.IntRange{Min: 10, Max: 5})
	require.Error(t, err)
	require.IsType(t, &generator.ConfigError{}, err)
}

func TestIntRejectsUnsupportedConfig(t *testing.T) {
	g := NewInt()
	err := g.Configure(generator.Mark{})
	require.IsType(t, &generator.ConfigError{}, err)
}
