// Command cascadia runs a linear threshold cascade simulation from the
// command line and prints per-step adoption counts. It is a plain text
// consumer of the simulation core; rendering belongs to other frontends.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cascadia/simulate"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "cascadia",
		Short: "Linear threshold cascade simulation over random social networks",
		Long: `cascadia simulates how adoption spreads through a social network.

Each node carries a threshold: it adopts once a sufficient fraction of its
neighbors have adopted. The simulation generates an Erdős–Rényi network,
assigns thresholds, seeds initial adopters, and iterates the cascade to a
fixed point, printing one line per step.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cascadia version %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one cascade simulation and print per-step adoption counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			out, err := simulate.Run(cfg)
			if err != nil {
				return err
			}

			total := out.Network.NodeCount()
			fmt.Printf("network: %d nodes, %d edges, %d seeds %v\n",
				total, out.Network.EdgeCount(), len(out.Seeds), out.Seeds)
			for step, snap := range out.Result.History {
				fmt.Printf("step %d: %d/%d adopted\n", step, snap.AdoptedCount(), total)
			}
			if out.Result.Converged {
				fmt.Printf("cascade stabilized after %d step(s): %d/%d adopted\n",
					out.Result.Steps, out.Result.Final().AdoptedCount(), total)
			} else {
				fmt.Printf("cascade stopped at the %d-step bound while still spreading\n",
					out.Result.Steps)
			}

			return nil
		},
	}

	cmd.Flags().String("config", "", "YAML config file (flags override file values)")
	cmd.Flags().Int("nodes", 0, "number of nodes in the network")
	cmd.Flags().Float64("probability", -1, "pairwise connection probability in [0,1]")
	cmd.Flags().Float64("min-threshold", -1, "lower bound for node thresholds")
	cmd.Flags().Float64("max-threshold", -1, "upper bound for node thresholds")
	cmd.Flags().Int("seeds", -1, "number of initial adopters")
	cmd.Flags().Int("max-steps", 0, "safety bound on cascade steps (0 = node count)")
	cmd.Flags().Int64("random-seed", 0, "seed for reproducible runs (0 = unseeded)")

	return cmd
}

// resolveConfig builds the simulation Config: defaults, then the optional
// YAML file, then explicit flag overrides.
func resolveConfig(cmd *cobra.Command) (simulate.Config, error) {
	cfg := simulate.DefaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := simulate.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("nodes") {
		cfg.NodeCount, _ = cmd.Flags().GetInt("nodes")
	}
	if cmd.Flags().Changed("probability") {
		cfg.EdgeProbability, _ = cmd.Flags().GetFloat64("probability")
	}
	if cmd.Flags().Changed("min-threshold") {
		cfg.MinThreshold, _ = cmd.Flags().GetFloat64("min-threshold")
	}
	if cmd.Flags().Changed("max-threshold") {
		cfg.MaxThreshold, _ = cmd.Flags().GetFloat64("max-threshold")
	}
	if cmd.Flags().Changed("seeds") {
		cfg.SeedCount, _ = cmd.Flags().GetInt("seeds")
	}
	if cmd.Flags().Changed("max-steps") {
		cfg.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
	}
	if cmd.Flags().Changed("random-seed") {
		cfg.RandomSeed, _ = cmd.Flags().GetInt64("random-seed")
	}

	return cfg, nil
}
