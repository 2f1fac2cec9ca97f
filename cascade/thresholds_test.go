package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cascadia/cascade"
	"github.com/katalvlaran/cascadia/generate"
	"github.com/katalvlaran/cascadia/network"
)

func TestAssignThresholds_Validation(t *testing.T) {
	assert.ErrorIs(t, cascade.AssignThresholds(nil, 0, 1), cascade.ErrNetworkNil)

	net, err := generate.Edgeless(3)
	require.NoError(t, err)

	cases := []struct {
		name     string
		min, max float64
	}{
		{"inverted bounds", 0.6, 0.2},
		{"min below zero", -0.1, 0.5},
		{"max above one", 0.5, 1.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cascade.AssignThresholds(net, tc.min, tc.max)
			assert.ErrorIs(t, err, network.ErrInvalidConfiguration)
		})
	}
}

func TestAssignThresholds_WithinBounds(t *testing.T) {
	net, err := generate.Random(30, 0.2, generate.WithSeed(7))
	require.NoError(t, err)

	require.NoError(t, cascade.AssignThresholds(net, 0.2, 0.6, cascade.WithSeed(7)))

	for _, id := range net.NodeIDs() {
		node, nerr := net.Node(id)
		require.NoError(t, nerr)
		require.True(t, node.HasThreshold())
		assert.GreaterOrEqual(t, node.Threshold, 0.2)
		assert.LessOrEqual(t, node.Threshold, 0.6)
		assert.False(t, node.Adopted, "assignment must not touch adoption state")
	}
}

func TestAssignThresholds_DeterministicForFixedSeed(t *testing.T) {
	build := func(seed int64) map[int]float64 {
		net, err := generate.Edgeless(10)
		require.NoError(t, err)
		require.NoError(t, cascade.AssignThresholds(net, 0, 1, cascade.WithSeed(seed)))
		out := make(map[int]float64, 10)
		for _, id := range net.NodeIDs() {
			node, nerr := net.Node(id)
			require.NoError(t, nerr)
			out[id] = node.Threshold
		}
		return out
	}

	assert.Equal(t, build(11), build(11), "same seed must reproduce thresholds")
	assert.NotEqual(t, build(11), build(12), "different seeds should diverge")
}

func TestAssignThresholds_DegenerateInterval(t *testing.T) {
	net, err := generate.Edgeless(5)
	require.NoError(t, err)
	require.NoError(t, cascade.AssignThresholds(net, 0.5, 0.5))

	for _, id := range net.NodeIDs() {
		node, nerr := net.Node(id)
		require.NoError(t, nerr)
		assert.Equal(t, 0.5, node.Threshold)
	}
}
