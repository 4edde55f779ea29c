package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [module]",
	Short: "Reset progress for a module, or everything with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		switch {
		case resetAll:
			if !confirmPrompt("Erase ALL progress? This cannot be undone.") {
				e.console.ShowInfo("Reset cancelled.")
				return nil
			}
			e.store.ResetAll()
			e.console.ShowInfo("All progress erased.")
		case len(args) == 1:
			name := args[0]
			if !confirmPrompt(fmt.Sprintf("Reset progress for module %q?", name)) {
				e.console.ShowInfo("Reset cancelled.")
				return nil
			}
			e.store.ResetModule(name)
			e.console.ShowInfo(fmt.Sprintf("Progress for %q erased.", name))
		default:
			return fmt.Errorf("name a module to reset, or pass --all")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "erase the whole progress document")
}
