package pathplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinderamarak/safe-stage/spatial"
)

func TestResolveRetractFullTraverse(t *testing.T) {
	never := func(spatial.LinearState) bool { return false }
	path := ResolveRetract(0.1, never, spatial.LinearState{T: 1.0}, spatial.LinearState{T: 0.0})

	require.Equal(t, Reached, path.Status)
	require.Len(t, path.Nodes, 11)
	assert.InDelta(t, 1.0, path.Nodes[0].T, 1e-9)
	assert.InDelta(t, 0.0, path.Nodes[len(path.Nodes)-1].T, 1e-9)
}

func TestResolveRetractBlockedBelowThreshold(t *testing.T) {
	blocked := func(s spatial.LinearState) bool { return s.T < 0.3 }
	path := ResolveRetract(0.1, blocked, spatial.LinearState{T: 1.0}, spatial.LinearState{T: 0.0})

	require.Equal(t, UnreachableEnd, path.Status)
	require.Len(t, path.Nodes, 8) // 1.0, 0.9, ..., 0.3
	assert.InDelta(t, 0.3, path.Nodes[len(path.Nodes)-1].T, 1e-9)
}

func TestResolveRetractInvalidStart(t *testing.T) {
	alwaysCollides := func(spatial.LinearState) bool { return true }
	path := ResolveRetract(0.1, alwaysCollides, spatial.LinearState{T: 1.0}, spatial.LinearState{T: 0.0})
	assert.Equal(t, InvalidStart, path.Status)
	assert.Empty(t, path.Nodes)
}

func TestResolveRetractIdempotence(t *testing.T) {
	never := func(spatial.LinearState) bool { return false }
	path := ResolveRetract(0.1, never, spatial.LinearState{T: 0.5}, spatial.LinearState{T: 0.5})
	require.Equal(t, Reached, path.Status)
	assert.Len(t, path.Nodes, 1)
}
