package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

func TestStringDefaultPrintableASCII(t *testing.T) {
	g := NewString()
	src := random.New(1)
	status := generator.NewStatus(30, 4)
	for i := 0; i < 200; i++ {
		v, err := g.Generate(src, status)
		require.NoError(t, err)
		s := v.(string)
		require.LessOrEqual(t, len(s), 30)
		for _, r := range s {
			require.True(t, r >= ' ' && r <= '~', "rune %#U", r)
		}
	}
}

func TestStringConfiguredRange(t *testing.T) {
	g := NewString()
	require.NoError(t, g.Configure(generator.RuneRange{Min: 'a', Max: 'f'}))

	src := random.New(2)
	for i := 0; i < 200; i++ {
		v, err := g.Generate(src, testStatus())
		require.NoError(t, err)
		for _, r := range v.(string) {
			require.True(t, r >= 'a' && r <= 'f')
		}
	}
}

func TestStringConfigureIsIdempotent(t *testing.T) {
	once, twice := NewString(), NewString()
	require.NoError(t, once.Configure(generator.RuneRange{Min: 'a', Max: 'z'}))
	require.NoError(t, twice.Configure(generator.RuneRange{Min: 'a', Max: 'z'}))
	require.NoError(t, twice.Configure(generator.RuneRange{Min: 'a', Max: 'z'}))

	srcOnce, srcTwice := random.New(3), random.New(3)
	for i := 0; i < 50; i++ {
		a, err := once.Generate(srcOnce, testStatus())
		require.NoError(t, err)
		b, err := twice.Generate(srcTwice, testStatus())
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}
