package ui

import (
	"fmt"
	"strings"

	"gitdojo/internal/cheatsheet"
)

// ShowTopicList prints the cheat sheet catalog.
func (c *Console) ShowTopicList(names []string, lookup func(string) *cheatsheet.Topic) {
	c.println(c.theme.Title.Render("Git Cheat Sheet"))
	c.println()
	for _, name := range names {
		topic := lookup(name)
		if topic == nil {
			continue
		}
		c.printf("  %s  %s\n", c.theme.Heading.Render(name), c.theme.Muted.Render(topic.Description))
	}
	c.println()
	c.println(c.theme.Muted.Render("Use 'cheat <topic>' for commands, or 'cheat search <term>'."))
}

// ShowTopic prints a full topic with its commands.
func (c *Console) ShowTopic(name string, topic *cheatsheet.Topic) {
	c.println(c.theme.Title.Render(topic.Title))
	if topic.Description != "" {
		c.println(c.theme.Muted.Render(topic.Description))
	}
	c.println()
	for _, cmd := range topic.Commands {
		c.showCommand(cmd)
	}
}

// ShowCommandMatches prints ranked search results.
func (c *Console) ShowCommandMatches(term string, commands []cheatsheet.Command) {
	if len(commands) == 0 {
		c.println(c.theme.Muted.Render(fmt.Sprintf("No commands matched %q.", term)))
		return
	}
	c.println(c.theme.Heading.Render(fmt.Sprintf("Matches for %q", term)))
	c.println()
	for _, cmd := range commands {
		c.showCommand(cmd)
	}
}

// ShowTopicSuggestions prints alternatives when a topic lookup missed.
func (c *Console) ShowTopicSuggestions(term string, suggestions []string) {
	c.println(c.theme.Failure.Render(fmt.Sprintf("Unknown topic %q.", term)))
	if len(suggestions) > 0 {
		c.printf("%s %s\n", c.theme.Muted.Render("Did you mean:"), strings.Join(suggestions, ", "))
	}
}

func (c *Console) showCommand(cmd cheatsheet.Command) {
	c.printf("%s\n", c.theme.Command.Render(cmd.Syntax))
	if cmd.Description != "" {
		c.printf("  %s\n", cmd.Description)
	}
	for _, ex := range cmd.Examples {
		c.printf("  %s %s\n", c.theme.Accent.Render("$"), ex.Command)
		if ex.Description != "" {
			c.printf("    %s\n", c.theme.Muted.Render(ex.Description))
		}
	}
	if len(cmd.Tags) > 0 {
		c.printf("  %s\n", c.theme.Muted.Render("tags: "+strings.Join(cmd.Tags, ", ")))
	}
	c.println()
}
