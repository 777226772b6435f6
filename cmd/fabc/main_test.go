package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrikgo/fabrik/blueprint"
	"github.com/fabrikgo/fabrik/fab"
)

func TestBuiltins_SignaturesAreIntrospectable(t *testing.T) {
	t.Parallel()

	reg := builtins()

	add := reg.MustGet("add")
	require.Len(t, add.ArgTypes(), 2)
	assert.True(t, add.OutputType().Equal(fab.TypeOf[int]()))

	upper := reg.MustGet("upper")
	require.Len(t, upper.ArgTypes(), 1)
	assert.True(t, upper.ArgTypes()[0].Equal(fab.TypeOf[string]()))
}

func TestBuiltins_EvaluateBlueprint(t *testing.T) {
	t.Parallel()

	bp := blueprint.Blueprint{
		Target: "shout",
		Nodes: map[string]blueprint.Node{
			"greeting": {Const: "hello"},
			"shout":    {Factory: "upper", Args: []string{"greeting"}},
		},
	}
	require.NoError(t, bp.Validate())

	g, err := bp.Build(builtins())
	require.NoError(t, err)
	assert.Equal(t, "HELLO", fab.MustUnwrap[string](g.Invoke()))
}
