package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrikgo/fabrik/blueprint"
	"github.com/fabrikgo/fabrik/fab"
)

func TestRegistry_ProvideGet(t *testing.T) {
	t.Parallel()

	add := fab.Func2(func(a, b int) int { return a + b })
	reg := blueprint.NewRegistry().Provide("add", add)

	got, ok := reg.Get("add")
	require.True(t, ok)
	assert.True(t, got.OutputType().Equal(fab.TypeOf[int]()))

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_ProvideOverwrites(t *testing.T) {
	t.Parallel()

	reg := blueprint.NewRegistry().
		Provide("n", fab.Const(1)).
		Provide("n", fab.Const("one"))

	got := reg.MustGet("n")
	assert.True(t, got.OutputType().Equal(fab.TypeOf[string]()))
}

func TestRegistry_MustGetPanicsOnMissing(t *testing.T) {
	t.Parallel()

	reg := blueprint.NewRegistry()
	assert.Panics(t, func() { reg.MustGet("nope") })
}

func TestRegistry_NamesSorted(t *testing.T) {
	t.Parallel()

	reg := blueprint.NewRegistry().
		Provide("mul", fab.Func2(func(a, b int) int { return a * b })).
		Provide("add", fab.Func2(func(a, b int) int { return a + b }))

	assert.Equal(t, []string{"add", "mul"}, reg.Names())
}
