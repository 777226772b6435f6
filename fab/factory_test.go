package fab_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrikgo/fabrik/fab"
)

// Const / ConstAny / Arg

func TestConst_IsArityZeroFactory(t *testing.T) {
	t.Parallel()

	f := fab.Const("hai")

	assert.True(t, f.OutputType().Equal(fab.TypeOf[string]()))
	assert.Empty(t, f.ArgTypes())
}

func TestConst_NewAlwaysSucceedsAndIsReusable(t *testing.T) {
	t.Parallel()

	f := fab.Const(24)

	for i := 0; i < 3; i++ {
		g, err := f.New()
		require.NoError(t, err)
		require.True(t, g.OutputType().Equal(fab.TypeOf[int]()))

		got, err := fab.Unwrap[int](g.Invoke())
		require.NoError(t, err)
		assert.Equal(t, 24, got)
	}
}

func TestConst_NewRejectsChildren(t *testing.T) {
	t.Parallel()

	f := fab.Const(24)

	_, err := f.New(fab.Arg(1))
	require.Error(t, err)

	var arity fab.ArityMismatchError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, 0, arity.Expected)
	assert.Equal(t, 1, arity.Actual)

	// The rejected factory stays usable.
	_, err = f.New()
	assert.NoError(t, err)
}

func TestConstAny_DynamicIdentity(t *testing.T) {
	t.Parallel()

	f := fab.ConstAny(celsius(21))

	require.True(t, f.OutputType().Equal(fab.TypeOf[celsius]()))
	assert.Empty(t, f.ArgTypes())

	g, err := f.New()
	require.NoError(t, err)
	assert.Equal(t, celsius(21), fab.MustUnwrap[celsius](g.Invoke()))
}

func TestConstAny_PanicsOnNilInterface(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { fab.ConstAny(nil) })
}

func TestArg_BindsImmediately(t *testing.T) {
	t.Parallel()

	g := fab.Arg("hello")

	require.True(t, g.OutputType().Equal(fab.TypeOf[string]()))
	assert.Equal(t, "hello", fab.MustUnwrap[string](g.Invoke()))
}

func TestInvoke_SameValueEveryTimeForConstantLeaves(t *testing.T) {
	t.Parallel()

	g := fab.Arg(5)

	first := fab.MustUnwrap[int](g.Invoke())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, fab.MustUnwrap[int](g.Invoke()))
	}
}
