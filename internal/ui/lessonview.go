package ui

import (
	"fmt"
	"strings"

	"gitdojo/internal/lessons"
)

// ShowModuleList prints the learning catalog.
func (c *Console) ShowModuleList(modules []lessons.ModuleRef, completed map[string]bool) {
	c.println(c.theme.Title.Render("Learning Modules"))
	c.println()
	for _, m := range modules {
		mark := c.theme.Muted.Render("[ ]")
		if completed[m.Name] {
			mark = c.theme.Success.Render("[x]")
		}
		c.printf("  %s %s  %s\n", mark, c.theme.Heading.Render(m.Name), m.Title)
		c.printf("      %s\n", c.theme.Muted.Render(fmt.Sprintf("%s · %s · %s", m.Level, m.Duration, m.Description)))
	}
	c.println()
	c.println(c.theme.Muted.Render("Use 'learn <module>' to start."))
}

// ShowLesson renders one lesson: theory as markdown, then examples.
func (c *Console) ShowLesson(moduleTitle string, index, total int, lesson lessons.Lesson) {
	c.println()
	c.println(c.theme.Title.Render(fmt.Sprintf("%s — Lesson %d/%d: %s", moduleTitle, index+1, total, lesson.Title)))
	c.println(c.Markdown(lesson.Theory))
	for _, ex := range lesson.Examples {
		if ex.Title != "" {
			c.println(c.theme.Heading.Render(ex.Title))
		}
		if ex.Description != "" {
			c.println(ex.Description)
		}
		if ex.Code != "" {
			c.printf("  %s %s\n", c.theme.Accent.Render("$"), c.theme.Command.Render(ex.Code))
		}
		if ex.Output != "" {
			for _, line := range strings.Split(strings.TrimRight(ex.Output, "\n"), "\n") {
				c.printf("    %s\n", c.theme.Muted.Render(line))
			}
		}
		if len(ex.Diagram) > 0 {
			for _, line := range ex.Diagram {
				c.printf("    %s\n", c.theme.Accent.Render(line))
			}
		}
		if ex.Explanation != "" {
			c.println(c.theme.Muted.Render(ex.Explanation))
		}
		c.println()
	}
}

// ShowQuizResult prints the quiz outcome for a lesson.
func (c *Console) ShowQuizResult(score int, passed bool) {
	if passed {
		c.println(c.theme.Success.Render(fmt.Sprintf("Quiz passed with %d%%.", score)))
	} else {
		c.println(c.theme.Failure.Render(fmt.Sprintf("Quiz score %d%%. Review the lesson and try again.", score)))
	}
}

// ShowQuizExplanation prints the correction for a wrong answer.
func (c *Console) ShowQuizExplanation(correctOption, explanation string) {
	c.printf("%s %s\n", c.theme.Failure.Render("Incorrect."), "Correct answer: "+correctOption)
	if explanation != "" {
		c.println(c.theme.Muted.Render(explanation))
	}
}
