package cheatsheet

import "fmt"

// Sheet is the full cheat sheet document, keyed by topic name.
type Sheet struct {
	Topics map[string]Topic `yaml:"topics"`
}

type Topic struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Commands    []Command `yaml:"commands"`
}

type Command struct {
	Name        string    `yaml:"name"`
	Syntax      string    `yaml:"syntax"`
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Tags        []string  `yaml:"tags"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

func (s *Sheet) Validate() error {
	if len(s.Topics) == 0 {
		return fmt.Errorf("cheat sheet has no topics")
	}
	for name, topic := range s.Topics {
		if topic.Title == "" {
			return fmt.Errorf("topic %q missing title", name)
		}
		if len(topic.Commands) == 0 {
			return fmt.Errorf("topic %q has no commands", name)
		}
		for i, cmd := range topic.Commands {
			if cmd.Name == "" {
				return fmt.Errorf("topic %q command %d missing name", name, i)
			}
			if cmd.Syntax == "" {
				return fmt.Errorf("topic %q command %q missing syntax", name, cmd.Name)
			}
		}
	}
	return nil
}
