package gen

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"

	"github.com/qz267/junit-quickcheck/random"
)

func TestUUIDVersionAndVariant(t *testing.T) {
	g := NewUUID()
	src := random.New(1)
	for i := 0; i < 100; i++ {
		v, err := g.Generate(src, testStatus())
		require.NoError(t, err)
		id := v.(uuid.UUID)
		require.Equal(t, byte(4), id.Version())
		require.Equal(t, byte(uuid.VariantRFC4122), id.Variant())
	}
}

func TestUUIDSeedDeterminesValue(t *testing.T) {
	g := NewUUID()

	a, err := g.Generate(random.New(7), testStatus())
	require.NoError(t, err)
	b, err := g.Generate(random.New(7), testStatus())
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := g.Generate(random.New(8), testStatus())
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}
