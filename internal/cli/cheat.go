package cli

import (
	"github.com/spf13/cobra"

	"gitdojo/internal/cheatsheet"
)

var cheatSearchTerm string

var cheatCmd = &cobra.Command{
	Use:   "cheat [topic]",
	Short: "Browse and search the Git cheat sheet",
	Long: `Without arguments lists every topic. With a topic shows its commands.
Use --search to fuzzy-match commands, either across the whole sheet or
within one topic. Mistyped topics get close-match suggestions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		sheet, err := cheatsheet.Load(e.cfg.CheatSheetPath())
		if err != nil {
			return err
		}

		switch {
		case len(args) == 1 && cheatSearchTerm != "":
			topicName := args[0]
			if sheet.Topic(topicName) == nil {
				e.console.ShowTopicSuggestions(topicName, sheet.FindSimilarTopics(topicName))
				return nil
			}
			e.console.ShowCommandMatches(cheatSearchTerm, sheet.SearchCommandsInTopic(topicName, cheatSearchTerm))
		case len(args) == 1:
			topicName := args[0]
			topic := sheet.Topic(topicName)
			if topic == nil {
				e.console.ShowTopicSuggestions(topicName, sheet.FindSimilarTopics(topicName))
				return nil
			}
			e.store.RecordCommandUsage("cheat", topicName, true)
			e.console.ShowTopic(topicName, topic)
		case cheatSearchTerm != "":
			e.console.ShowCommandMatches(cheatSearchTerm, sheet.SearchCommands(cheatSearchTerm))
		default:
			e.console.ShowTopicList(sheet.TopicNames(), sheet.Topic)
		}
		return nil
	},
}

func init() {
	cheatCmd.Flags().StringVarP(&cheatSearchTerm, "search", "s", "", "fuzzy-search commands by name, description, syntax, or tag")
}
