package lessons

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testIndex = `modules:
  - name: branching
    title: "Branch Management"
    description: "Master Git branching"
    level: "Intermediate"
    duration: "1-2 hours"
    order: 2
    file: branching.yml
  - name: basics
    title: "Git Fundamentals"
    description: "Learn basic Git concepts"
    level: "Beginner"
    duration: "2-3 hours"
    order: 1
    file: basics.yml
`

const testModule = `title: "Git Fundamentals"
description: "Learn basic Git concepts"
lessons:
  - title: "What is Git?"
    order: 1
    theory: |
      Git is a distributed version control system.
    examples:
      - title: "Initialize a repository"
        code: "git init"
        output: "Initialized empty Git repository"
    quiz:
      questions:
        - question: "What does git init do?"
          options: ["Creates a repository", "Deletes a repository"]
          correct_answer: 0
          explanation: "git init creates a new repository."
        - question: "Is Git distributed?"
          options: ["No", "Yes"]
          correct_answer: 1
          explanation: "Every clone is a full repository."
`

func writeTestCatalog(t *testing.T) *FSLoader {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.yml"), []byte(testIndex), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "basics.yml"), []byte(testModule), 0o644); err != nil {
		t.Fatalf("write module: %v", err)
	}
	return NewFSLoader(dir)
}

func TestListModulesSortsByOrder(t *testing.T) {
	loader := writeTestCatalog(t)

	modules, err := loader.ListModules()
	if err != nil {
		t.Fatalf("list modules: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
	if modules[0].Name != "basics" || modules[1].Name != "branching" {
		t.Fatalf("expected order basics, branching; got %s, %s", modules[0].Name, modules[1].Name)
	}
}

func TestLoadModule(t *testing.T) {
	loader := writeTestCatalog(t)

	module, err := loader.LoadModule("basics")
	if err != nil {
		t.Fatalf("load module: %v", err)
	}
	if module.Title != "Git Fundamentals" {
		t.Fatalf("expected title Git Fundamentals, got %q", module.Title)
	}
	if len(module.Lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(module.Lessons))
	}
	if got := len(module.Lessons[0].Quiz.Questions); got != 2 {
		t.Fatalf("expected 2 quiz questions, got %d", got)
	}
}

func TestLoadModuleUnknownName(t *testing.T) {
	loader := writeTestCatalog(t)

	_, err := loader.LoadModule("rebasing")
	if !errors.Is(err, ErrModuleNotFound) {
		t.Fatalf("expected ErrModuleNotFound, got %v", err)
	}
}

func TestQuizScore(t *testing.T) {
	quiz := Quiz{Questions: []Question{
		{Options: []string{"a", "b"}, CorrectAnswer: 0},
		{Options: []string{"a", "b"}, CorrectAnswer: 1},
	}}

	if got := quiz.Score([]int{0, 1}); got != 100 {
		t.Fatalf("expected perfect score 100, got %d", got)
	}
	if got := quiz.Score([]int{0, 0}); got != 50 {
		t.Fatalf("expected half score 50, got %d", got)
	}
	if got := quiz.Score(nil); got != 0 {
		t.Fatalf("expected unanswered score 0, got %d", got)
	}
	if got := (Quiz{}).Score(nil); got != 100 {
		t.Fatalf("expected empty quiz to score 100, got %d", got)
	}
}
