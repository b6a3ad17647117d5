package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qz267/junit-quickcheck/random"
)

// constGen always produces the same value.
type constGen struct {
	value any
}

func (g *constGen) Generate(src *random.Source, status Status) (any, error) {
	return g.value, nil
}

// twoSlot is a minimal two-component composite used to exercise the
// binding protocol.
type twoSlot struct {
	Components
}

func (g *twoSlot) NeededComponents() int { return 2 }

func (g *twoSlot) Generate(src *random.Source, status Status) (any, error) {
	first, err := g.Component(0).Generate(src, status)
	if err != nil {
		return nil, err
	}
	second, err := g.Component(1).Generate(src, status)
	if err != nil {
		return nil, err
	}
	return [2]any{first, second}, nil
}

func TestBindChecksArity(t *testing.T) {
	g := &twoSlot{}

	err := Bind(g, &constGen{value: 1})
	require.Error(t, err)

	var arityErr *ArityError
	require.True(t, errors.As(err, &arityErr))
	require.Equal(t, 2, arityErr.Want)
	require.Equal(t, 1, arityErr.Got)

	// The failed bind must not have installed anything.
	require.Equal(t, 0, g.ComponentCount())

	err = Bind(g, &constGen{value: 1}, &constGen{value: 2}, &constGen{value: 3})
	require.True(t, errors.As(err, &arityErr))
	require.Equal(t, 3, arityErr.Got)
	require.Equal(t, 0, g.ComponentCount())
}

func TestBoundComponentsFillSlotsInOrder(t *testing.T) {
	g := &twoSlot{}
	require.NoError(t, Bind(g, &constGen{value: "left"}, &constGen{value: "right"}))
	require.Equal(t, 2, g.ComponentCount())

	v, err := g.Generate(random.New(1), NewStatus(10, 4))
	require.NoError(t, err)
	require.Equal(t, [2]any{"left", "right"}, v)
}

func TestUnboundComponentAccessFailsFast(t *testing.T) {
	g := &twoSlot{}
	require.Panics(t, func() {
		_, _ = g.Generate(random.New(1), NewStatus(10, 4))
	})
}

func TestComponentErrorPropagates(t *testing.T) {
	boom := errors.New("component failed")
	g := &twoSlot{}
	require.NoError(t, Bind(g, &failingGen{err: boom}, &constGen{value: 2}))

	_, err := g.Generate(random.New(1), NewStatus(10, 4))
	require.ErrorIs(t, err, boom)
}

type failingGen struct {
	err error
}

func (g *failingGen) Generate(src *random.Source, status Status) (any, error) {
	return nil, g.err
}
