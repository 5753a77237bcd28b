package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankur/wakeprep/internal/config"
	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/progress"
	"github.com/ankur/wakeprep/internal/question"
	"github.com/ankur/wakeprep/internal/selection"
	"github.com/ankur/wakeprep/internal/store"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Select the next question for the learner",
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().String("exam", "GATE", "Exam track to pick from")
	pickCmd.Flags().String("min", "easy", "Minimum difficulty")
	pickCmd.Flags().String("max", "hard", "Maximum difficulty")
	pickCmd.Flags().Int("max-time", 120, "Maximum expected solve time in seconds")
	pickCmd.Flags().Int("exclude-recent", 0, "Skip questions attempted within this many days")
	pickCmd.Flags().String("focus", "", "Focus mode override (balanced|weakness|random|progressive)")
	pickCmd.Flags().Bool("explain", false, "Print the score breakdown for the pick")
	pickCmd.Flags().Bool("quick", false, "Use the non-personalized quick-select fallback")
}

func runPick(cmd *cobra.Command, args []string) error {
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

	exam, _ := cmd.Flags().GetString("exam")
	minFlag, _ := cmd.Flags().GetString("min")
	maxFlag, _ := cmd.Flags().GetString("max")
	maxTime, _ := cmd.Flags().GetInt("max-time")
	excludeRecent, _ := cmd.Flags().GetInt("exclude-recent")
	focus, _ := cmd.Flags().GetString("focus")
	explain, _ := cmd.Flags().GetBool("explain")
	quick, _ := cmd.Flags().GetBool("quick")

	min, err := question.ParseDifficulty(minFlag)
	if err != nil {
		return err
	}
	max, err := question.ParseDifficulty(maxFlag)
	if err != nil {
		return err
	}

	bank, err := loadBank(ctx, st, cfg.LearnerID)
	if err != nil {
		return err
	}

	profile, err := loadOrCreateProfile(ctx, st, cfg.LearnerID, question.Exam(exam))
	if err != nil {
		return err
	}

	pipeline := newPipeline(cfg)
	now := time.Now()

	if quick {
		q, err := pipeline.QuickSelect(bank, question.Exam(exam), profile.PreferredDifficulty)
		if err != nil {
			return err
		}
		printQuestion(q)
		return nil
	}

	criteria := selection.Criteria{
		Exam:              question.Exam(exam),
		DifficultyMin:     min,
		DifficultyMax:     max,
		MaxSolveTime:      maxTime,
		ExcludeRecentDays: excludeRecent,
		FocusMode:         profile.FocusMode,
		Profile:           profile,
	}
	if focus != "" {
		criteria.FocusMode = learner.FocusMode(focus)
	}

	q, err := pipeline.SelectQuestion(bank, criteria, now)
	if errors.Is(err, selection.ErrNoEligibleQuestion) {
		stats := pipeline.FilterStats(bank, criteria, now)
		return fmt.Errorf("%w (survivors per stage: exam=%d subjects=%d topics=%d difficulty=%d time=%d recency=%d); relax the criteria or rerun with --quick",
			err, stats.AfterExam, stats.AfterSubjects, stats.AfterTopics,
			stats.AfterDifficulty, stats.AfterSolveTime, stats.AfterRecency)
	}
	if err != nil {
		return err
	}

	printQuestion(q)
	if explain {
		fmt.Println()
		fmt.Println(pipeline.ExplainSelection(*q, profile, now))
	}
	return nil
}

// loadBank fetches the full catalog and hydrates per-learner recency from
// the attempt log.
func loadBank(ctx context.Context, st *store.Store, learnerID string) ([]question.Question, error) {
	bank, err := st.Questions().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return nil, fmt.Errorf("question catalog is empty; run `wakeprep seed` first")
	}

	lastAttempted, err := st.Attempts().LastAttempted(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	for i := range bank {
		if t, ok := lastAttempted[bank[i].ID]; ok {
			at := t
			bank[i].LastAttempted = &at
		}
	}
	return bank, nil
}

func loadOrCreateProfile(ctx context.Context, st *store.Store, learnerID string, exam question.Exam) (*learner.Profile, error) {
	p, err := st.Profiles().Load(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = learner.NewProfile(learnerID, exam)
		progress.NewManager(progress.DefaultXPConfig()).InitProfile(p)
	}
	return p, nil
}

func printQuestion(q *question.Question) {
	fmt.Printf("[%s/%s/%s] %s (%ds)\n", q.Exam, q.Subject, q.Difficulty, q.ID, q.ExpectedSolveTime)
	fmt.Println(q.Prompt)
	for i, opt := range q.Options {
		fmt.Printf("  %c) %s\n", 'A'+i, opt)
	}
}
