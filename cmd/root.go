package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankur/wakeprep/internal/config"
	"github.com/ankur/wakeprep/internal/selection"
	"github.com/ankur/wakeprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wakeprep",
	Short: "Adaptive practice-question picker",
	Long: "Wakeprep selects the next practice question for a learner and " +
		"evolves their performance model after every attempt.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WAKEPREP_DB env var)")

	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then WAKEPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// newPipeline builds the selection pipeline from config: a fixed seed
// gives reproducible picks, otherwise the RNG is clock-seeded.
func newPipeline(cfg config.Config) *selection.Pipeline {
	pcfg := selection.Config{TopN: cfg.TopN}
	if cfg.Seed != 0 {
		pcfg.Rand = rand.New(rand.NewSource(cfg.Seed))
	} else {
		pcfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return selection.New(pcfg)
}
