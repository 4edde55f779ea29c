package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"gitdojo/internal/practice"
	"gitdojo/internal/scenario"
)

// Console renders everything the learner sees. All output flows through
// one writer so tests can capture it.
type Console struct {
	w     io.Writer
	theme Theme
	md    *glamour.TermRenderer
}

func NewConsole(w io.Writer) *Console {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		md = nil
	}
	return &Console{w: w, theme: DefaultTheme(), md: md}
}

// Markdown renders md-formatted text for the terminal, falling back to
// the raw text when no renderer is available.
func (c *Console) Markdown(text string) string {
	if c.md == nil {
		return text
	}
	out, err := c.md.Render(text)
	if err != nil {
		return text
	}
	return out
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.w, args...)
}

func (c *Console) ShowIntro(def *scenario.Definition) {
	c.println()
	c.println(c.theme.Title.Render("Practice: " + def.Name))
	if def.Description != "" {
		c.println(c.theme.Muted.Render(def.Description))
	}
	meta := []string{}
	if def.Difficulty != "" {
		meta = append(meta, "difficulty: "+def.Difficulty)
	}
	if def.EstimatedTime != "" {
		meta = append(meta, "estimated: "+def.EstimatedTime)
	}
	if len(meta) > 0 {
		c.println(c.theme.Muted.Render(strings.Join(meta, "  ")))
	}
	c.println()
}

func (c *Console) ShowSandbox(path string) {
	c.printf("%s %s\n", c.theme.Heading.Render("Sandbox:"), path)
	c.println(c.theme.Muted.Render("Work in that directory with your own git commands. Progress is checked automatically."))
	c.println()
}

func (c *Console) ShowObjective(session *practice.Session) {
	obj, ok := session.Objective()
	if !ok {
		return
	}
	c.printf("%s %s\n",
		c.theme.Heading.Render(fmt.Sprintf("Objective %d/%d:", session.CurrentObjective+1, session.TotalObjectives())),
		obj.Goal,
	)
	if obj.Command != "" {
		c.printf("  %s %s\n", c.theme.Muted.Render("try:"), c.theme.Command.Render(obj.Command))
	}
}

func (c *Console) ShowResult(res practice.Result) {
	switch res.Status {
	case practice.StatusCompleted:
		c.printf("%s %s\n", c.theme.Success.Render("✓"), res.Message)
	case practice.StatusFailed:
		c.printf("%s %s\n", c.theme.Failure.Render("✗"), res.Message)
	default:
		c.printf("%s %s\n", c.theme.Pending.Render("…"), res.Message)
	}
	if res.Hint != "" {
		c.printf("  %s %s\n", c.theme.HintMark.Render("hint:"), res.Hint)
	}
}

func (c *Console) ShowObjectiveList(session *practice.Session) {
	c.println(c.theme.Heading.Render("Objectives"))
	for i, obj := range session.Scenario.Objectives {
		mark := c.theme.Muted.Render("[ ]")
		if i < session.CurrentObjective || session.Completed {
			mark = c.theme.Success.Render("[x]")
		}
		c.printf("  %s %s\n", mark, obj.Goal)
	}
	c.println()
}

func (c *Console) ShowSummary(session *practice.Session) {
	done := len(session.CompletedObjectives)
	total := session.TotalObjectives()
	c.println()
	if session.Completed {
		c.println(c.theme.Success.Render(fmt.Sprintf("Scenario complete! %d/%d objectives.", done, total)))
	} else {
		c.println(c.theme.Pending.Render(fmt.Sprintf("Stopped at %d/%d objectives.", done, total)))
	}
	if session.SandboxPath != "" {
		c.printf("%s %s\n", c.theme.Muted.Render("Sandbox kept at:"), session.SandboxPath)
	}
	c.println()
}

func (c *Console) ShowInfo(msg string) {
	c.println(c.theme.Accent.Render(msg))
}

func (c *Console) ShowError(msg string) {
	c.println(c.theme.Failure.Render(msg))
}
