package scenario

import (
	"fmt"
	"strings"
)

// Validation types an objective may declare. Anything other than
// file-content validation falls back to repository-state checks keyed by
// the objective's expected-result tag.
const (
	ValidationFileContent = "file_content"
)

// Expected-result tags the evaluator knows how to check.
const (
	ExpectMergeConflict  = "merge_conflict"
	ExpectShowsConflicts = "shows_conflicts"
	ExpectFileStaged     = "file_staged"
	ExpectMergeCompleted = "merge_completed"
)

// Definition is one declarative practice exercise: ordered setup steps
// followed by ordered objectives. Loaded once, never mutated.
type Definition struct {
	Name            string           `yaml:"name"`
	Description     string           `yaml:"description"`
	Difficulty      string           `yaml:"difficulty"`
	Category        string           `yaml:"category"`
	EstimatedTime   string           `yaml:"estimated_time"`
	Setup           []SetupStep      `yaml:"setup"`
	Objectives      []Objective      `yaml:"objectives"`
	SuccessCriteria []Criterion      `yaml:"success_criteria"`
	Evaluation      []EvaluationHint `yaml:"evaluation"`
}

type SetupStep struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

// Objective is one discrete ordered task. Objectives are evaluated
// strictly in list order; none is skipped.
type Objective struct {
	ID                      string   `yaml:"id"`
	Goal                    string   `yaml:"goal"`
	Command                 string   `yaml:"command"`
	ExpectedResult          string   `yaml:"expected_result"`
	ValidationType          string   `yaml:"validation_type"`
	TargetFile              string   `yaml:"target_file"`
	ExpectedContentContains []string `yaml:"expected_content_contains"`
	Hint                    string   `yaml:"hint"`
}

// Criterion is advisory metadata describing what a finished sandbox
// should look like. The evaluator does not dispatch on it.
type Criterion struct {
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	File        string   `yaml:"file"`
	Content     []string `yaml:"content"`
}

type EvaluationHint struct {
	Condition string `yaml:"condition"`
	Message   string `yaml:"message"`
}

func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(d.Objectives) == 0 {
		return fmt.Errorf("scenario %q has no objectives", d.Name)
	}
	seen := map[string]struct{}{}
	for i, obj := range d.Objectives {
		if strings.TrimSpace(obj.ID) == "" {
			return fmt.Errorf("objectives[%d].id is required", i)
		}
		if _, ok := seen[obj.ID]; ok {
			return fmt.Errorf("duplicate objective id %q", obj.ID)
		}
		seen[obj.ID] = struct{}{}
		if strings.TrimSpace(obj.Goal) == "" {
			return fmt.Errorf("objective %q has no goal", obj.ID)
		}
		if strings.EqualFold(obj.ValidationType, ValidationFileContent) && obj.TargetFile == "" {
			return fmt.Errorf("objective %q uses file_content validation without target_file", obj.ID)
		}
	}
	for i, step := range d.Setup {
		if strings.TrimSpace(step.Command) == "" {
			return fmt.Errorf("setup[%d].command is required", i)
		}
	}
	return nil
}

func applyDefaults(d *Definition) {
	if d.Difficulty == "" {
		d.Difficulty = "beginner"
	}
	if d.Category == "" {
		d.Category = "general"
	}
	if d.EstimatedTime == "" {
		d.EstimatedTime = "10 minutes"
	}
}
