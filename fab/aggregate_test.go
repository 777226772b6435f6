package fab_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrikgo/fabrik/fab"
)

func TestAggregate_CollectsInChildOrder(t *testing.T) {
	t.Parallel()

	agg := fab.NewAggregate[bool]()
	require.True(t, agg.ElemType().Equal(fab.TypeOf[bool]()))
	require.True(t, agg.OutputType().Equal(fab.TypeOf[[]bool]()))

	isEight := fab.Func0(func() bool { return 4 == 8 })
	lie, err := isEight.New()
	require.NoError(t, err)

	g, err := agg.New(fab.Arg(true), fab.Arg(true), lie)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, false}, fab.MustUnwrap[[]bool](g.Invoke()))
}

func TestAggregate_EmptyProducesEmptySlice(t *testing.T) {
	t.Parallel()

	g, err := fab.NewAggregate[int]().New()
	require.NoError(t, err)
	assert.Empty(t, fab.MustUnwrap[[]int](g.Invoke()))
}

func TestAggregate_RejectsMismatchedChild(t *testing.T) {
	t.Parallel()

	_, err := fab.NewAggregate[int]().New(fab.Arg(5), fab.Arg("13"))
	require.Error(t, err)

	var mismatch fab.ArgTypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 1, mismatch.Index)
	assert.True(t, mismatch.Expected.Equal(fab.TypeOf[int]()))
	assert.True(t, mismatch.Actual.Equal(fab.TypeOf[string]()))
}

func TestAggregate_UsableAsFactoryArgument(t *testing.T) {
	t.Parallel()

	join := fab.Func1(func(items []string) string { return strings.Join(items, ", ") })

	list, err := fab.NewAggregate[string]().New(fab.Arg("5"), fab.Arg("13"))
	require.NoError(t, err)

	g, err := join.New(list)
	require.NoError(t, err)
	assert.Equal(t, "5, 13", fab.MustUnwrap[string](g.Invoke()))
}
