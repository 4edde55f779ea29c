package cli

import (
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your learning progress and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		e.console.ShowProgress(e.store.Snapshot())

		if e.journal != nil {
			sum, err := e.journal.GetSummary(cmd.Context())
			if err != nil {
				e.log.Error("journal summary failed", map[string]any{"error": err.Error()})
				return nil
			}
			last, err := e.journal.GetLastRun(cmd.Context())
			if err != nil {
				e.log.Error("journal last run failed", map[string]any{"error": err.Error()})
				return nil
			}
			e.console.ShowRunJournal(sum, last)
		}
		return nil
	},
}
