package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankur/wakeprep/internal/config"
	"github.com/ankur/wakeprep/internal/question"
	"github.com/ankur/wakeprep/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled sample questions into the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		samples := question.SampleQuestions()
		if err := st.Questions().Seed(ctx, samples); err != nil {
			return err
		}

		total, err := st.Questions().Count(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("seeded %d questions (%d in catalog)\n", len(samples), total)
		return nil
	},
}
