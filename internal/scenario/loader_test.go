package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

const validScenario = `name: merge_conflict
description: Create and resolve a merge conflict
setup:
  - command: "git checkout -b feature"
    description: Create the branch
objectives:
  - id: merge
    goal: Trigger the conflict
    command: "git merge feature"
    expected_result: merge_conflict
  - id: resolve
    goal: Fix the file
    validation_type: file_content
    target_file: hello.txt
    expected_content_contains:
      - "Hello"
`

func writeScenario(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
}

func TestLoadScenarioAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "merge_conflict.yml", validScenario)
	loader := NewLoader(dir)

	def := loader.LoadScenario("merge_conflict")
	if def == nil {
		t.Fatalf("expected scenario to load")
	}
	if def.Difficulty != "beginner" {
		t.Fatalf("expected default difficulty, got %q", def.Difficulty)
	}
	if def.Category != "general" {
		t.Fatalf("expected default category, got %q", def.Category)
	}
	if len(def.Objectives) != 2 {
		t.Fatalf("expected 2 objectives, got %d", len(def.Objectives))
	}
}

func TestLoadScenarioMissingIsNil(t *testing.T) {
	loader := NewLoader(t.TempDir())
	if def := loader.LoadScenario("nope"); def != nil {
		t.Fatalf("expected nil for missing scenario, got %+v", def)
	}
}

func TestLoadScenarioMalformedIsNil(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "broken.yml", "name: broken\nobjectives: {{{")
	loader := NewLoader(dir)

	if def := loader.LoadScenario("broken"); def != nil {
		t.Fatalf("expected nil for malformed scenario, got %+v", def)
	}
}

func TestLoadScenarioInvalidIsNil(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "empty.yml", "name: empty\nobjectives: []\n")
	loader := NewLoader(dir)

	if def := loader.LoadScenario("empty"); def != nil {
		t.Fatalf("expected nil for scenario without objectives, got %+v", def)
	}
}

func TestListScenarioNamesSorted(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "zz.yml", validScenario)
	writeScenario(t, dir, "aa.yaml", validScenario)
	writeScenario(t, dir, "notes.txt", "not a scenario")
	loader := NewLoader(dir)

	names := loader.ListScenarioNames()
	if len(names) != 2 || names[0] != "aa" || names[1] != "zz" {
		t.Fatalf("expected [aa zz], got %v", names)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	def := Definition{
		Name: "dup",
		Objectives: []Objective{
			{ID: "one", Goal: "first"},
			{ID: "one", Goal: "second"},
		},
	}
	if err := def.Validate(); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestValidateRejectsFileContentWithoutTarget(t *testing.T) {
	def := Definition{
		Name: "bad",
		Objectives: []Objective{
			{ID: "one", Goal: "edit", ValidationType: ValidationFileContent},
		},
	}
	if err := def.Validate(); err == nil {
		t.Fatalf("expected missing target_file error")
	}
}
