package cheatsheet

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Match thresholds for fuzzy search, on a 0..100 similarity scale.
// Commands need a stronger match than topic suggestions.
const (
	CommandMatchThreshold = 70
	TopicMatchThreshold   = 60
)

// Service answers cheat sheet lookups over a sheet loaded once at
// startup.
type Service struct {
	sheet *Sheet
}

// Load reads and validates a cheat sheet document.
func Load(path string) (*Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cheat sheet: %w", err)
	}
	var sheet Sheet
	if err := yaml.Unmarshal(raw, &sheet); err != nil {
		return nil, fmt.Errorf("parse cheat sheet: %w", err)
	}
	if err := sheet.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cheat sheet: %w", err)
	}
	return &Service{sheet: &sheet}, nil
}

// Topic returns a topic by case-insensitive name, or nil.
func (s *Service) Topic(name string) *Topic {
	if topic, ok := s.sheet.Topics[strings.ToLower(name)]; ok {
		return &topic
	}
	return nil
}

// TopicNames returns all topic keys in sorted order.
func (s *Service) TopicNames() []string {
	names := make([]string, 0, len(s.sheet.Topics))
	for name := range s.sheet.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SearchCommands ranks every command in the sheet against term and
// returns those at or above CommandMatchThreshold, best match first.
func (s *Service) SearchCommands(term string) []Command {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	var matches []scoredCommand
	for _, topic := range s.sheet.Topics {
		matches = append(matches, scoreCommands(topic.Commands, term, CommandMatchThreshold)...)
	}
	return rankCommands(matches)
}

// SearchCommandsInTopic is SearchCommands scoped to one topic. An empty
// term returns the whole topic unranked; an unknown topic returns nil.
func (s *Service) SearchCommandsInTopic(topicName, term string) []Command {
	topic := s.Topic(topicName)
	if topic == nil {
		return nil
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return topic.Commands
	}
	return rankCommands(scoreCommands(topic.Commands, term, CommandMatchThreshold))
}

// FindSimilarTopics suggests topic keys for a term that matched no
// topic exactly, best match first.
func (s *Service) FindSimilarTopics(term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	type scoredTopic struct {
		name  string
		score int
	}
	var matches []scoredTopic
	for name, topic := range s.sheet.Topics {
		score := partialRatio(term, name)
		if v := partialRatio(term, topic.Title); v > score {
			score = v
		}
		if v := partialRatio(term, topic.Description); v > score {
			score = v
		}
		if score >= TopicMatchThreshold {
			matches = append(matches, scoredTopic{name: name, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].name < matches[j].name
	})
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

type scoredCommand struct {
	command Command
	score   int
}

func scoreCommands(commands []Command, term string, threshold int) []scoredCommand {
	var out []scoredCommand
	for _, cmd := range commands {
		score := partialRatio(term, cmd.Name)
		if v := partialRatio(term, cmd.Description); v > score {
			score = v
		}
		if v := partialRatio(term, cmd.Syntax); v > score {
			score = v
		}
		for _, tag := range cmd.Tags {
			if v := partialRatio(term, tag); v > score {
				score = v
			}
		}
		if score >= threshold {
			out = append(out, scoredCommand{command: cmd, score: score})
		}
	}
	return out
}

func rankCommands(matches []scoredCommand) []Command {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].command.Name < matches[j].command.Name
	})
	out := make([]Command, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.command)
	}
	return out
}
