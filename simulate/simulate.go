// Package simulate: configuration surface and pipeline orchestration.
//
// Run applies the stages in a fixed order, resolving configuration once and
// wrapping any stage error at the API boundary; no partial cleanup is
// attempted, the caller simply discards the failed run.
package simulate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cascadia/cascade"
	"github.com/katalvlaran/cascadia/generate"
	"github.com/katalvlaran/cascadia/network"
)

const methodRun = "simulate.Run"

// Stream identifiers for per-stage RNG derivation.
const (
	streamGenerate uint64 = iota + 1
	streamThresholds
	streamSeeds
)

// Config is the complete parameter surface consumed from the caller
// (interactive UI, CLI flags, or a YAML file).
type Config struct {
	// NodeCount is the number of nodes in the generated network.
	NodeCount int `yaml:"node_count"`

	// EdgeProbability is the pairwise connection probability in [0,1].
	EdgeProbability float64 `yaml:"edge_probability"`

	// MinThreshold and MaxThreshold bound per-node threshold sampling.
	MinThreshold float64 `yaml:"min_threshold"`
	MaxThreshold float64 `yaml:"max_threshold"`

	// SeedCount is the number of initial adopters.
	SeedCount int `yaml:"seed_count"`

	// MaxSteps bounds cascade iterations; 0 defaults to NodeCount.
	MaxSteps int `yaml:"max_steps"`

	// RandomSeed makes the whole run reproducible; 0 means unseeded.
	RandomSeed int64 `yaml:"random_seed"`
}

// DefaultConfig mirrors the classic demo parameters: a 15-node network with
// 20% connection probability, thresholds in [0.2,0.6], and 3 seed adopters.
func DefaultConfig() Config {
	return Config{
		NodeCount:       15,
		EdgeProbability: 0.2,
		MinThreshold:    0.2,
		MaxThreshold:    0.6,
		SeedCount:       3,
	}
}

// Validate reports the first violated constraint. All violations wrap
// network.ErrInvalidConfiguration so callers branch with one errors.Is.
func (c Config) Validate() error {
	switch {
	case c.NodeCount < 1:
		return fmt.Errorf("node_count=%d < 1: %w", c.NodeCount, network.ErrInvalidConfiguration)
	case c.EdgeProbability < 0 || c.EdgeProbability > 1:
		return fmt.Errorf("edge_probability=%.6f not in [0,1]: %w",
			c.EdgeProbability, network.ErrInvalidConfiguration)
	case c.MinThreshold < 0 || c.MaxThreshold > 1 || c.MinThreshold > c.MaxThreshold:
		return fmt.Errorf("threshold bounds [%.6f,%.6f] violate 0 ≤ min ≤ max ≤ 1: %w",
			c.MinThreshold, c.MaxThreshold, network.ErrInvalidConfiguration)
	case c.SeedCount < 0 || c.SeedCount > c.NodeCount:
		return fmt.Errorf("seed_count=%d not in [0,%d]: %w",
			c.SeedCount, c.NodeCount, network.ErrInvalidConfiguration)
	case c.MaxSteps < 0:
		return fmt.Errorf("max_steps=%d < 0: %w", c.MaxSteps, network.ErrInvalidConfiguration)
	}

	return nil
}

// LoadConfig reads a YAML file over DefaultConfig; absent keys keep their
// defaults. The result is not validated here — Run validates.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Outcome bundles everything a consumer needs to render a run without
// recomputation: the network (topology, thresholds, terminal adoption
// flags), the seed set, and the ordered snapshot history.
type Outcome struct {
	Network *network.Network
	Seeds   []int
	Result  *cascade.Result
}

// Thresholds returns a snapshot mapping node ID → assigned threshold.
func (o *Outcome) Thresholds() map[int]float64 {
	out := make(map[int]float64, o.Network.NodeCount())
	for _, id := range o.Network.NodeIDs() {
		node, err := o.Network.Node(id)
		if err != nil {
			continue // IDs come from the network itself
		}
		out[id] = node.Threshold
	}

	return out
}

// Run executes the full pipeline for cfg.
//
// Stage order is fixed: generate → thresholds → seeds → cascade. With a
// non-zero RandomSeed each stage receives an independent deterministic
// sub-stream, so e.g. changing SeedCount does not perturb the topology.
func Run(cfg Config) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	var genOpts []generate.Option
	var thrOpts, seedOpts []cascade.Option
	if cfg.RandomSeed != 0 {
		genOpts = append(genOpts, generate.WithSeed(deriveSeed(cfg.RandomSeed, streamGenerate)))
		thrOpts = append(thrOpts, cascade.WithSeed(deriveSeed(cfg.RandomSeed, streamThresholds)))
		seedOpts = append(seedOpts, cascade.WithSeed(deriveSeed(cfg.RandomSeed, streamSeeds)))
	}

	net, err := generate.Random(cfg.NodeCount, cfg.EdgeProbability, genOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	if err = cascade.AssignThresholds(net, cfg.MinThreshold, cfg.MaxThreshold, thrOpts...); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	seeds, err := cascade.SelectSeeds(net, cfg.SeedCount, seedOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	var runOpts []cascade.Option
	if cfg.MaxSteps > 0 {
		runOpts = append(runOpts, cascade.WithMaxSteps(cfg.MaxSteps))
	}
	res, err := cascade.Run(net, runOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	return &Outcome{Network: net, Seeds: seeds, Result: res}, nil
}

// deriveSeed mixes the base seed and a stream identifier into an
// independent 64-bit seed (SplitMix64-style finalizer; the constants are
// the canonical multipliers, chosen for strong bit diffusion).
func deriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
