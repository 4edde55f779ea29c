package lessons

import (
	"fmt"
	"math"
)

// Index lists the available learning modules and the lesson file each
// one lives in.
type Index struct {
	Modules []ModuleRef `yaml:"modules"`
}

type ModuleRef struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Level       string `yaml:"level"`
	Duration    string `yaml:"duration"`
	Order       int    `yaml:"order"`
	File        string `yaml:"file"`
}

// Module is one lesson file: ordered lessons with theory, worked
// examples, and a closing quiz.
type Module struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Lessons     []Lesson `yaml:"lessons"`
}

type Lesson struct {
	Title    string    `yaml:"title"`
	Theory   string    `yaml:"theory"`
	Examples []Example `yaml:"examples"`
	Quiz     Quiz      `yaml:"quiz"`
	Order    int       `yaml:"order"`
}

type Example struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Code        string   `yaml:"code"`
	Output      string   `yaml:"output"`
	Explanation string   `yaml:"explanation"`
	Diagram     []string `yaml:"diagram"`
}

type Quiz struct {
	Questions []Question `yaml:"questions"`
}

type Question struct {
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation"`
}

// Score grades selected answer indexes against the quiz, 0..100. A quiz
// with no questions scores 100 so lessons without one still complete.
func (q Quiz) Score(answers []int) int {
	if len(q.Questions) == 0 {
		return 100
	}
	correct := 0
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(q.Questions)) * 100))
}

func (idx *Index) Validate() error {
	if len(idx.Modules) == 0 {
		return fmt.Errorf("lesson index has no modules")
	}
	seen := map[string]bool{}
	for i, m := range idx.Modules {
		if m.Name == "" {
			return fmt.Errorf("module %d missing name", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate module name %q", m.Name)
		}
		seen[m.Name] = true
		if m.Title == "" {
			return fmt.Errorf("module %q missing title", m.Name)
		}
		if m.File == "" {
			return fmt.Errorf("module %q missing lesson file", m.Name)
		}
	}
	return nil
}

func (m *Module) Validate() error {
	if m.Title == "" {
		return fmt.Errorf("module missing title")
	}
	if len(m.Lessons) == 0 {
		return fmt.Errorf("module %q has no lessons", m.Title)
	}
	for i, lesson := range m.Lessons {
		if lesson.Title == "" {
			return fmt.Errorf("module %q lesson %d missing title", m.Title, i)
		}
		for qi, question := range lesson.Quiz.Questions {
			if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
				return fmt.Errorf("module %q lesson %q question %d has out-of-range answer", m.Title, lesson.Title, qi)
			}
		}
	}
	return nil
}
