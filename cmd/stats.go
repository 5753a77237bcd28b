package cmd

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/ankur/wakeprep/internal/config"
	"github.com/ankur/wakeprep/internal/performance"
	"github.com/ankur/wakeprep/internal/progress"
	"github.com/ankur/wakeprep/internal/store"
)

var (
	statsTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	statsLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	statsGood  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	statsBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
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

	profile, err := st.Profiles().Load(ctx, cfg.LearnerID)
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Println("no profile yet; run `wakeprep drill` to get started")
		return nil
	}

	mgr := progress.NewManager(progress.DefaultXPConfig())
	perf := performance.Summarize(profile)
	prog := mgr.Summarize(profile)

	fmt.Println(statsTitle.Render("wakeprep · " + profile.ID))
	fmt.Println()
	fmt.Printf("%s level %d, %d XP (%d to next, %d%% through)\n",
		statsLabel.Render("progress:"), prog.Level, prog.TotalXP, prog.XPToNextLevel, prog.ProgressPercent)
	fmt.Printf("%s %d answered, %.1f%% accuracy\n",
		statsLabel.Render("questions:"), perf.QuestionsAnswered, perf.OverallAccuracy)
	fmt.Printf("%s %d day(s) current, %d longest\n",
		statsLabel.Render("streak:"), prog.CurrentStreak, prog.LongestStreak)
	fmt.Printf("%s %d of %d unlocked\n",
		statsLabel.Render("achievements:"), prog.AchievementsUnlocked, prog.TotalAchievements)

	if len(perf.WeakAreas) > 0 {
		fmt.Printf("%s %s\n", statsLabel.Render("weak areas:"), statsBad.Render(strings.Join(perf.WeakAreas, ", ")))
	}
	if len(perf.StrongAreas) > 0 {
		fmt.Printf("%s %s\n", statsLabel.Render("strong areas:"), statsGood.Render(strings.Join(perf.StrongAreas, ", ")))
	}

	if len(profile.SubjectPerformance) > 0 {
		fmt.Println()
		fmt.Println(statsTitle.Render("subjects"))

		subjects := make([]string, 0, len(profile.SubjectPerformance))
		for s := range profile.SubjectPerformance {
			subjects = append(subjects, s)
		}
		sort.Strings(subjects)

		for _, s := range subjects {
			st := profile.SubjectPerformance[s]
			fmt.Printf("  %-28s %3d attempts  %5.1f%%  %s\n", s, st.TotalAttempts, st.Accuracy, st.Trend)
		}
	}

	next := mgr.NextAchievements(profile, 3)
	if len(next) > 0 {
		fmt.Println()
		fmt.Println(statsTitle.Render("next achievements"))
		for _, a := range next {
			fmt.Printf("  %-22s %s (%d/%d)\n", a.Name, statsLabel.Render(a.Description), a.Progress, a.Target)
		}
	}
	return nil
}
