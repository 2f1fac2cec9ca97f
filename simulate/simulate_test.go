package simulate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cascadia/network"
	"github.com/katalvlaran/cascadia/simulate"
)

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*simulate.Config)
	}{
		{"zero nodes", func(c *simulate.Config) { c.NodeCount = 0 }},
		{"probability above one", func(c *simulate.Config) { c.EdgeProbability = 1.5 }},
		{"probability below zero", func(c *simulate.Config) { c.EdgeProbability = -0.1 }},
		{"inverted thresholds", func(c *simulate.Config) { c.MinThreshold = 0.9; c.MaxThreshold = 0.1 }},
		{"threshold above one", func(c *simulate.Config) { c.MaxThreshold = 1.2 }},
		{"negative seeds", func(c *simulate.Config) { c.SeedCount = -1 }},
		{"too many seeds", func(c *simulate.Config) { c.SeedCount = c.NodeCount + 1 }},
		{"negative max steps", func(c *simulate.Config) { c.MaxSteps = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := simulate.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), network.ErrInvalidConfiguration)
		})
	}

	assert.NoError(t, simulate.DefaultConfig().Validate())
}

func TestRun_ProducesCompleteOutcome(t *testing.T) {
	cfg := simulate.DefaultConfig()
	cfg.RandomSeed = 99

	out, err := simulate.Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.NodeCount, out.Network.NodeCount())
	assert.Len(t, out.Seeds, cfg.SeedCount)
	assert.Equal(t, cfg.SeedCount, out.Result.History[0].AdoptedCount())
	assert.True(t, out.Result.Converged)

	thresholds := out.Thresholds()
	assert.Len(t, thresholds, cfg.NodeCount)
	for id, thr := range thresholds {
		assert.GreaterOrEqual(t, thr, cfg.MinThreshold, "node %d", id)
		assert.LessOrEqual(t, thr, cfg.MaxThreshold, "node %d", id)
	}
}

func TestRun_ReproducibleForFixedSeed(t *testing.T) {
	cfg := simulate.DefaultConfig()
	cfg.RandomSeed = 1234

	a, err := simulate.Run(cfg)
	require.NoError(t, err)
	b, err := simulate.Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Network.Edges(), b.Network.Edges())
	assert.Equal(t, a.Seeds, b.Seeds)
	require.Equal(t, len(a.Result.History), len(b.Result.History))
	for i := range a.Result.History {
		assert.True(t, a.Result.History[i].Equal(b.Result.History[i]), "snapshot %d differs", i)
	}
}

func TestRun_StagesUseIndependentStreams(t *testing.T) {
	cfg := simulate.DefaultConfig()
	cfg.RandomSeed = 7

	base, err := simulate.Run(cfg)
	require.NoError(t, err)

	// Changing only the seed count must not perturb the topology.
	cfg.SeedCount = 5
	more, err := simulate.Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, base.Network.Edges(), more.Network.Edges())
	assert.Equal(t, base.Thresholds(), more.Thresholds())
	assert.Len(t, more.Seeds, 5)
}

func TestRun_InvalidConfigRejected(t *testing.T) {
	cfg := simulate.DefaultConfig()
	cfg.EdgeProbability = 2
	_, err := simulate.Run(cfg)
	assert.ErrorIs(t, err, network.ErrInvalidConfiguration)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	body := []byte("node_count: 25\nedge_probability: 0.4\nseed_count: 2\nrandom_seed: 5\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := simulate.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.NodeCount)
	assert.Equal(t, 0.4, cfg.EdgeProbability)
	assert.Equal(t, 2, cfg.SeedCount)
	assert.Equal(t, int64(5), cfg.RandomSeed)
	// Absent keys keep their defaults.
	assert.Equal(t, 0.2, cfg.MinThreshold)
	assert.Equal(t, 0.6, cfg.MaxThreshold)

	_, err = simulate.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
