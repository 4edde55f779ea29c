package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"gitdojo/internal/gitrepo"
	"gitdojo/internal/practice"
	"gitdojo/internal/scenario"
)

var (
	practiceInteractive bool
	practiceSandbox     string
	practiceList        bool
)

var practiceCmd = &cobra.Command{
	Use:   "practice [scenario]",
	Short: "Run a sandboxed practice scenario",
	Long: `Sets up a throwaway Git repository for the chosen scenario and watches
it while you work through the objectives with your own git commands.
Without a scenario argument an interactive picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		loader := scenario.NewLoader(e.cfg.ScenariosDir())

		if practiceList {
			names := loader.ListScenarioNames()
			if len(names) == 0 {
				e.console.ShowInfo("No practice scenarios found.")
				return nil
			}
			for _, name := range names {
				if def := loader.LoadScenario(name); def != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, def.Description)
				}
			}
			return nil
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = pickScenario(loader)
			if err != nil {
				return err
			}
		}

		runner := practice.NewRunner(loader, gitrepo.NewInspector(), e.store, e.console, e.log)
		runner.PollInterval = e.cfg.PollInterval
		runner.SandboxRoot = e.cfg.SandboxRoot
		runner.KeepSandbox = e.cfg.KeepSandboxes
		if e.journal != nil {
			runner.Journal = e.journal
		}
		runner.Confirm = confirmPrompt

		return runner.RunScenario(cmd.Context(), name, practiceInteractive, practiceSandbox)
	},
}

func pickScenario(loader *scenario.FSLoader) (string, error) {
	names := loader.ListScenarioNames()
	if len(names) == 0 {
		return "", fmt.Errorf("no practice scenarios available")
	}

	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		label := name
		if def := loader.LoadScenario(name); def != nil && def.Description != "" {
			label = fmt.Sprintf("%s — %s", name, def.Description)
		}
		options = append(options, huh.NewOption(label, name))
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Choose a practice scenario").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func confirmPrompt(prompt string) bool {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}

func init() {
	practiceCmd.Flags().BoolVarP(&practiceInteractive, "interactive", "i", true, "poll the sandbox and walk through objectives")
	practiceCmd.Flags().StringVar(&practiceSandbox, "sandbox-path", "", "use this sandbox directory instead of a generated one")
	practiceCmd.Flags().BoolVarP(&practiceList, "list", "l", false, "list available scenarios")
}
