package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetromino/internal/spawn"
)

var (
	flagCount   int
	flagSeed    int64
	flagUniform bool
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a spawn sequence",
	Long: `Print the pieces a spawner would produce, then the kind that would come
next. The default policy is the
7-bag: every run of seven pieces holds each kind once. --uniform draws
each kind independently.

Examples:
  tetromino deal
  tetromino deal --count 21 --seed 7
  tetromino deal --uniform`,
	Args: cobra.NoArgs,
	RunE: runDeal,
}

func init() {
	dealCmd.Flags().IntVarP(&flagCount, "count", "n", 14, "Number of pieces to deal")
	dealCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	dealCmd.Flags().BoolVar(&flagUniform, "uniform", false, "Draw kinds uniformly instead of from a bag")
}

func runDeal(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if flagCount < 1 {
		return fmt.Errorf("count must be positive, got %d", flagCount)
	}

	cfg, p, err := setup(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = cfg.Spawn.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy := cfg.SpawnPolicy()
	if flagUniform {
		policy = spawn.PolicyUniform
	}
	logger.Debug("dealing", "policy", policy, "seed", seed, "count", flagCount)

	deal(cmd.OutOrStdout(), spawn.New(policy, seed, cfg.SpawnAnchor(), p), flagCount)
	return nil
}

// deal prints count pieces from s, then the kind that would come next.
func deal(out io.Writer, s *spawn.Spawner, count int) {
	for i := 0; i < count; i++ {
		fmt.Fprintf(out, "%3d  %s\n", i+1, s.Next())
	}
	fmt.Fprintf(out, "next: %s\n", s.Peek())
}
