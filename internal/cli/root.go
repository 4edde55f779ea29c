package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "gitdojo",
	Short: "gitdojo — learn Git in the terminal",
	Long: `gitdojo teaches Git with three tools: a searchable cheat sheet,
guided lessons with quizzes, and sandboxed practice scenarios that
watch a throwaway repository while you fix it with real git commands.

Progress is stored in ~/.local/share/gitdojo/ (JSON for the progress
document, SQLite for the run journal).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(cheatCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
}
