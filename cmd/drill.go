package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankur/wakeprep/internal/config"
	"github.com/ankur/wakeprep/internal/learner"
	"github.com/ankur/wakeprep/internal/progress"
	"github.com/ankur/wakeprep/internal/question"
	"github.com/ankur/wakeprep/internal/selection"
	"github.com/ankur/wakeprep/internal/session"
	"github.com/ankur/wakeprep/internal/store"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run a simulated practice session and record the results",
	Long: "Drill selects a batch of questions, simulates answering them, and " +
		"folds the attempts into the learner profile. Useful for exercising " +
		"the engine end to end without an interaction layer.",
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("exam", "GATE", "Exam track to drill")
	drillCmd.Flags().Int("count", 3, "Number of questions in the session")
	drillCmd.Flags().Float64("skill", 0.7, "Simulated probability of answering correctly")
}

func runDrill(cmd *cobra.Command, args []string) error {
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
	count, _ := cmd.Flags().GetInt("count")
	skill, _ := cmd.Flags().GetFloat64("skill")

	bank, err := loadBank(ctx, st, cfg.LearnerID)
	if err != nil {
		return err
	}
	profile, err := loadOrCreateProfile(ctx, st, cfg.LearnerID, question.Exam(exam))
	if err != nil {
		return err
	}

	pipeline := newPipeline(cfg)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	now := time.Now()

	criteria := selection.Criteria{
		Exam:          question.Exam(exam),
		DifficultyMin: question.Easy,
		DifficultyMax: question.Hard,
		MaxSolveTime:  300,
		FocusMode:     profile.FocusMode,
		Profile:       profile,
	}

	picked, err := pipeline.SelectMultiple(bank, criteria, count, now)
	if err != nil {
		return err
	}

	recorder := session.NewRecorder(progress.NewManager(progress.DefaultXPConfig()))
	sess := session.NewSession(now)

	for i := range picked {
		q := &picked[i]
		attempt := simulateAttempt(q, profile, rng, skill, now)

		var outcome session.AttemptOutcome
		profile, outcome = recorder.RecordAttempt(profile, q, attempt, sess, now)

		if err := st.Attempts().Append(ctx, profile.ID, attempt); err != nil {
			return err
		}

		mark := "✗"
		if attempt.IsCorrect {
			mark = "✓"
		}
		fmt.Printf("%s %-24s %-10s +%d XP\n", mark, q.ID, q.Difficulty, outcome.XPEarned)
		for _, a := range outcome.Unlocked {
			fmt.Printf("  achievement unlocked: %s (+%d XP)\n", a.Name, a.XP)
		}
	}

	var outcome session.SessionOutcome
	profile, outcome = recorder.CompleteSession(profile, sess, now)

	if err := st.Profiles().Save(ctx, profile); err != nil {
		return err
	}

	fmt.Printf("\nsession: %d/%d correct (%.0f%%), %d XP", sess.CorrectAnswers, len(picked), sess.Accuracy, sess.XPEarned)
	if outcome.BonusXP > 0 {
		fmt.Printf(" (perfect session +%d)", outcome.BonusXP)
	}
	fmt.Println()
	if outcome.Streak.Broken {
		fmt.Println("streak broken, back to day 1")
	} else {
		fmt.Printf("streak: %d day(s)\n", profile.CurrentStreak)
	}
	if outcome.LeveledUp {
		fmt.Printf("level up! now level %d\n", outcome.NewLevel)
	}
	return nil
}

// simulateAttempt fabricates a plausible attempt: correct with the given
// skill probability, solve time jittered around the question budget.
func simulateAttempt(q *question.Question, p *learner.Profile, rng *rand.Rand, skill float64, now time.Time) *question.Attempt {
	correct := rng.Float64() < skill
	timeSpent := float64(q.ExpectedSolveTime) * (0.4 + rng.Float64())

	attempts := 1
	selected := q.CorrectAnswer
	if !correct {
		attempts = 1 + rng.Intn(2)
		selected = (q.CorrectAnswer + 1) % len(q.Options)
	}

	return &question.Attempt{
		QuestionID:           q.ID,
		Question:             q,
		StartTime:            now.Add(-time.Duration(timeSpent) * time.Second),
		EndTime:              now,
		TimeSpent:            timeSpent,
		SelectedAnswer:       selected,
		SubmittedAnswers:     []int{selected},
		IsCorrect:            correct,
		Attempts:             attempts,
		FrustrationAtAttempt: p.FrustrationLevel,
		StreakAtAttempt:      p.CurrentStreak,
	}
}
