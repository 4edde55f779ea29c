package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"gitdojo/internal/lessons"
)

// QuizPassThreshold is the minimum quiz score that completes a lesson.
const QuizPassThreshold = 70

var learnCmd = &cobra.Command{
	Use:   "learn [module]",
	Short: "Work through a guided learning module",
	Long: `Without arguments lists the available modules. With a module name,
walks its lessons in order: theory, worked examples, then a quiz. A
lesson completes at ` + fmt.Sprint(QuizPassThreshold) + `% or better; the module resumes where you left off.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := newEnv()
		if err != nil {
			return err
		}
		defer cleanup()

		loader := lessons.NewFSLoader(e.cfg.LessonsDir())

		if len(args) == 0 {
			modules, err := loader.ListModules()
			if err != nil {
				return err
			}
			snapshot := e.store.Snapshot()
			completed := map[string]bool{}
			for name, mod := range snapshot.Modules {
				completed[name] = mod.IsCompleted
			}
			e.console.ShowModuleList(modules, completed)
			return nil
		}

		name := args[0]
		module, err := loader.LoadModule(name)
		if err != nil {
			return err
		}

		start := 0
		if mod, ok := e.store.Snapshot().Modules[name]; ok && mod.CurrentLesson > 0 && !mod.IsCompleted {
			if mod.CurrentLesson < len(module.Lessons) {
				start = mod.CurrentLesson
			}
		}

		for i := start; i < len(module.Lessons); i++ {
			lesson := module.Lessons[i]
			e.console.ShowLesson(module.Title, i, len(module.Lessons), lesson)

			score := runQuiz(e, lesson.Quiz)
			passed := score >= QuizPassThreshold
			e.console.ShowQuizResult(score, passed)
			e.store.UpdateLessonProgress(name, i, score, passed)

			if !passed {
				if !confirmPrompt("Retry this lesson's quiz?") {
					return nil
				}
				i--
				continue
			}
			if i < len(module.Lessons)-1 && !confirmPrompt("Continue to the next lesson?") {
				return nil
			}
		}

		e.store.MarkModuleCompleted(name)
		e.console.ShowInfo(fmt.Sprintf("Module %q completed!", module.Title))
		return nil
	},
}

// runQuiz asks every question and returns the resulting score. Wrong
// answers are corrected immediately so the quiz itself teaches.
func runQuiz(e *env, quiz lessons.Quiz) int {
	if len(quiz.Questions) == 0 {
		return quiz.Score(nil)
	}

	answers := make([]int, len(quiz.Questions))
	for qi, question := range quiz.Questions {
		options := make([]huh.Option[int], 0, len(question.Options))
		for oi, opt := range question.Options {
			options = append(options, huh.NewOption(opt, oi))
		}

		choice := 0
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[int]().
				Title(question.Question).
				Options(options...).
				Value(&choice),
		))
		if err := form.Run(); err != nil {
			choice = -1
		}
		answers[qi] = choice

		if choice != question.CorrectAnswer {
			correct := ""
			if question.CorrectAnswer >= 0 && question.CorrectAnswer < len(question.Options) {
				correct = question.Options[question.CorrectAnswer]
			}
			e.console.ShowQuizExplanation(correct, question.Explanation)
		}
	}
	return quiz.Score(answers)
}
