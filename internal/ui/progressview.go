package ui

import (
	"fmt"
	"sort"
	"time"

	"gitdojo/internal/progress"
	"gitdojo/internal/state"
)

// ShowProgress prints the full progress report.
func (c *Console) ShowProgress(data progress.Data) {
	c.println(c.theme.Title.Render("Your Progress"))
	c.println()

	c.println(c.theme.Heading.Render("Streak"))
	c.printf("  current: %d days  longest: %d days\n", data.Streaks.CurrentStreak, data.Streaks.LongestStreak)
	if !data.Streaks.LastActivityDate.IsZero() {
		c.printf("  last activity: %s\n", data.Streaks.LastActivityDate.Format("2006-01-02"))
	}
	c.println()

	c.println(c.theme.Heading.Render("Modules"))
	if len(data.Modules) == 0 {
		c.println(c.theme.Muted.Render("  none started yet"))
	}
	for _, name := range sortedKeys(data.Modules) {
		mod := data.Modules[name]
		mark := c.theme.Pending.Render("in progress")
		if mod.IsCompleted {
			mark = c.theme.Success.Render("completed")
		}
		c.printf("  %s  %s (lesson %d)\n", c.theme.Accent.Render(name), mark, mod.CurrentLesson)
	}
	c.println()

	c.println(c.theme.Heading.Render("Practice"))
	if len(data.Practice) == 0 {
		c.println(c.theme.Muted.Render("  none attempted yet"))
	}
	for _, name := range sortedKeys(data.Practice) {
		rec := data.Practice[name]
		mark := c.theme.Pending.Render("in progress")
		if rec.Completed {
			mark = c.theme.Success.Render("completed")
		}
		line := fmt.Sprintf("  %s  %s  attempts: %d", c.theme.Accent.Render(name), mark, len(rec.Attempts))
		if rec.BestScore > 0 {
			line += fmt.Sprintf("  best: %d", rec.BestScore)
		}
		if rec.BestTimeMS > 0 {
			line += "  fastest: " + formatDuration(rec.BestTimeMS)
		}
		c.println(line)
	}
	c.println()

	c.println(c.theme.Heading.Render("Commands"))
	if len(data.Commands) == 0 {
		c.println(c.theme.Muted.Render("  none recorded yet"))
	}
	for _, name := range topCommands(data.Commands, 5) {
		st := data.Commands[name]
		rate := 0
		if st.UsageCount > 0 {
			rate = st.SuccessfulUses * 100 / st.UsageCount
		}
		c.printf("  %s  uses: %d  success: %d%%\n", c.theme.Command.Render(name), st.UsageCount, rate)
	}
	c.println()

	c.println(c.theme.Heading.Render("Totals"))
	c.printf("  sessions: %d  modules completed: %d  scenarios completed: %d\n",
		data.Stats.TotalSessions,
		data.Stats.ModulesCompleted,
		data.Stats.PracticeSessionsCompleted,
	)
}

// ShowRunJournal prints aggregates and the most recent run from the
// practice run journal. last may be nil when no run was recorded yet.
func (c *Console) ShowRunJournal(sum state.Summary, last *state.LastRun) {
	c.println(c.theme.Heading.Render("Practice journal"))
	c.printf("  runs: %d  completed: %d  objectives solved: %d\n", sum.Runs, sum.Completed, sum.Objectives)
	if last != nil {
		c.printf("  last run: %s (%s) %d/%d objectives\n",
			last.ScenarioName, last.Mode, last.ObjectivesCompleted, last.TotalObjectives)
	}
	c.println()
}

// topCommands ranks command names by usage count, most used first, up
// to limit entries. Ties break on name for stable output.
func topCommands(m map[string]*progress.CommandStats, limit int) []string {
	names := sortedKeys(m)
	sort.SliceStable(names, func(i, j int) bool {
		return m[names[i]].UsageCount > m[names[j]].UsageCount
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
